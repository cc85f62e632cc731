/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the GitHub research agent from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
	"github.com/2948841010/BUILD-MY-AGENT/agents/planexec"
	"github.com/2948841010/BUILD-MY-AGENT/agents/react"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
	"github.com/2948841010/BUILD-MY-AGENT/agents/textmodel"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolset"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/store"
)

type config struct {
	// Chat Completions credentials for non-Claude models.
	ChatAPIKey  string `env:"LLM_API_KEY"`
	ChatBaseURL string `env:"LLM_BASE_URL,default=https://api.deepseek.com"`
	// Anthropic credentials for claude-* models.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	LogLevel string `env:"LOG_LEVEL,default=warn"`

	// GitHub credentials, used only when running without an MCP server.
	DataDir              string `env:"DATA_DIR,default=repositories"`
	GithubToken          string `env:"GITHUB_TOKEN"`
	GithubAppID          int64  `env:"GITHUB_APP_ID"`
	GithubInstallationID int64  `env:"GITHUB_INSTALLATION_ID"`
	GithubAppPrivateKey  string `env:"GITHUB_APP_PRIVATE_KEY"`
}

func main() {
	var (
		mode          = flag.String("mode", "auto", "execution mode: auto, react, or plan")
		maxIterations = flag.Int("max-iterations", react.DefaultMaxIterations, "ReAct iteration budget")
		maxSteps      = flag.Int("max-steps", planexec.DefaultMaxSteps, "plan step budget")
		plannerModel  = flag.String("planner-model", "deepseek-reasoner", "model that plans in plan mode")
		executorModel = flag.String("model", "deepseek-chat", "model that reasons and summarizes")
		mcpURL        = flag.String("mcp", "", "SSE URL of an MCP server; empty runs the tools in-process")
		jsonOut       = flag.Bool("json", false, "print the full report as JSON")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}
	setupLogging(cfg.LogLevel)

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: agent [flags] <query>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	inv, cleanup, err := buildInvoker(ctx, cfg, *mcpURL)
	if err != nil {
		clog.FatalContextf(ctx, "setting up tools: %v", err)
	}
	defer cleanup()

	creds := modelrouter.Credentials{
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		ChatAPIKey:      cfg.ChatAPIKey,
		ChatBaseURL:     cfg.ChatBaseURL,
	}

	decision := strategy.DecideMode(query)
	runMode := decision.Mode
	switch *mode {
	case "auto":
		fmt.Printf("Mode: %s (%s)\n", runMode, strings.Join(decision.Reasons, "; "))
	case "react":
		runMode = strategy.ModeReact
	case "plan":
		runMode = strategy.ModePlanExecute
	default:
		clog.FatalContextf(ctx, "unknown mode %q (want auto, react, or plan)", *mode)
	}

	if runMode == strategy.ModeReact {
		err = runReact(ctx, query, creds, *executorModel, *maxIterations, inv, *jsonOut)
	} else {
		err = runPlanExecute(ctx, query, creds, *plannerModel, *executorModel, *maxSteps, inv, *jsonOut)
	}
	if err != nil {
		clog.FatalContextf(ctx, "agent run failed: %v", err)
	}
}

func buildInvoker(ctx context.Context, cfg config, mcpURL string) (toolset.Invoker, func(), error) {
	if mcpURL != "" {
		mcp, err := toolset.DialSSE(ctx, mcpURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MCP server: %w", err)
		}
		return mcp, func() { _ = mcp.Close() }, nil
	}

	gh, err := githubsearch.NewClient(ctx, githubsearch.Credentials{
		Token:          cfg.GithubToken,
		AppID:          cfg.GithubAppID,
		InstallationID: cfg.GithubInstallationID,
		PrivateKeyPath: cfg.GithubAppPrivateKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating GitHub client: %w", err)
	}
	svc := githubsearch.New(gh, store.New(cfg.DataDir))
	return toolset.NewLocal(svc), func() {}, nil
}

func runReact(ctx context.Context, query string, creds modelrouter.Credentials, model string, maxIterations int, inv toolset.Invoker, jsonOut bool) error {
	completer, err := textmodel.New(model, creds)
	if err != nil {
		return err
	}

	agent, err := react.New(completer, inv,
		react.WithMaxIterations(maxIterations),
		react.WithObserver(func(iteration int, rec react.Record) {
			fmt.Printf("\n[iteration %d]\n", iteration)
			fmt.Printf("Thought: %s\n", rec.Thought)
			if rec.Action != "" {
				fmt.Printf("Action: %s\n", rec.Action)
				fmt.Printf("Observation: %s\n", firstLines(rec.Observation, 6))
			}
		}))
	if err != nil {
		return err
	}

	report, err := agent.Run(ctx, query)
	if err != nil {
		return err
	}

	fmt.Printf("\nStrategy: %s, %d iteration(s), %d repositories\n", report.Strategy, report.Iterations, len(report.Repos))
	fmt.Printf("\n%s\n", report.FinalAnswer)
	if jsonOut {
		return printJSON(report)
	}
	return nil
}

func runPlanExecute(ctx context.Context, query string, creds modelrouter.Credentials, plannerModel, executorModel string, maxSteps int, inv toolset.Invoker, jsonOut bool) error {
	agent, err := planexec.New(ctx, planexec.Config{
		PlannerModel:    plannerModel,
		SummarizerModel: executorModel,
		Credentials:     creds,
		MaxSteps:        maxSteps,
	}, inv, planexec.WithObserver(func(step int, res planexec.StepResult) {
		fmt.Printf("\n[step %d] %s\n", step, res.Tool)
		if res.Purpose != "" {
			fmt.Printf("Purpose: %s\n", res.Purpose)
		}
		if res.Error != "" {
			fmt.Printf("Error: %s\n", res.Error)
		} else {
			fmt.Printf("Observation: %s\n", firstLines(res.Observation, 6))
		}
	}))
	if err != nil {
		return err
	}

	report, err := agent.Run(ctx, query)
	if err != nil {
		return err
	}

	fmt.Printf("\nPlan strategy: %s, %d step(s) run, %d failure(s), %d repositories\n",
		report.Plan.Strategy, report.Execution.StepsRun, report.Execution.Failures, len(report.Execution.DiscoveredRepos))
	fmt.Printf("\n%s\n", report.FinalAnswer)
	if jsonOut {
		return printJSON(report)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// firstLines trims a tool observation for terminal output.
func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n..."
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
