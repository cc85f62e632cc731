/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the GitHub search MCP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sethvargo/go-envconfig"

	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/store"
	"github.com/2948841010/BUILD-MY-AGENT/mcpserver"
)

type config struct {
	Host      string `env:"HOST,default=0.0.0.0"`
	Port      int    `env:"PORT,default=50001"`
	Transport string `env:"TRANSPORT,default=sse"`
	DataDir   string `env:"DATA_DIR,default=repositories"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`

	// GitHub authentication. A personal access token is the simple path;
	// the three GITHUB_APP_* variables together select App authentication.
	GithubToken          string `env:"GITHUB_TOKEN"`
	GithubAppID          int64  `env:"GITHUB_APP_ID"`
	GithubInstallationID int64  `env:"GITHUB_INSTALLATION_ID"`
	GithubAppPrivateKey  string `env:"GITHUB_APP_PRIVATE_KEY"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}
	setupLogging(cfg.LogLevel)

	gh, err := githubsearch.NewClient(ctx, githubsearch.Credentials{
		Token:          cfg.GithubToken,
		AppID:          cfg.GithubAppID,
		InstallationID: cfg.GithubInstallationID,
		PrivateKeyPath: cfg.GithubAppPrivateKey,
	})
	if err != nil {
		clog.FatalContextf(ctx, "creating GitHub client: %v", err)
	}

	svc := githubsearch.New(gh, store.New(cfg.DataDir))
	srv := mcpserver.New(svc)

	switch strings.ToLower(cfg.Transport) {
	case "stdio":
		clog.InfoContext(ctx, "Starting MCP server on stdio")
		if err := server.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout); err != nil {
			clog.FatalContextf(ctx, "stdio server failed: %v", err)
		}

	case "sse":
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		sse := server.NewSSEServer(srv)

		errCh := make(chan error, 1)
		go func() {
			clog.InfoContextf(ctx, "Starting MCP server on %s (SSE)", addr)
			errCh <- sse.Start(addr)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				clog.FatalContextf(ctx, "SSE server failed: %v", err)
			}
		case <-ctx.Done():
			clog.InfoContext(ctx, "Shutting down")
			if err := sse.Shutdown(context.Background()); err != nil {
				clog.ErrorContextf(ctx, "shutdown: %v", err)
			}
		}

	default:
		clog.FatalContextf(ctx, "unknown transport %q (want sse or stdio)", cfg.Transport)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
