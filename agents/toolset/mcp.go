/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolset

import (
	"context"
	"fmt"
	"strings"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCP invokes tools on a remote Model Context Protocol server.
type MCP struct {
	client *mcpclient.Client
}

// NewMCP wraps an already-initialized MCP client.
func NewMCP(c *mcpclient.Client) *MCP {
	return &MCP{client: c}
}

// DialSSE connects to an MCP tool server over SSE and initializes the
// session.
func DialSSE(ctx context.Context, url string) (*MCP, error) {
	c, err := mcpclient.NewSSEMCPClient(url)
	if err != nil {
		return nil, fmt.Errorf("creating SSE client for %s: %w", url, err)
	}
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting SSE client: %w", err)
	}
	if err := initialize(ctx, c); err != nil {
		c.Close()
		return nil, err
	}
	return NewMCP(c), nil
}

// DialStdio launches an MCP tool server as a subprocess and initializes the
// session over its stdio.
func DialStdio(ctx context.Context, command string, args ...string) (*MCP, error) {
	// The stdio constructor starts the subprocess itself.
	c, err := mcpclient.NewStdioMCPClient(command, nil, args...)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", command, err)
	}
	if err := initialize(ctx, c); err != nil {
		c.Close()
		return nil, err
	}
	return NewMCP(c), nil
}

func initialize(ctx context.Context, c *mcpclient.Client) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "build-my-agent",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, req); err != nil {
		return fmt.Errorf("initializing MCP session: %w", err)
	}
	return nil
}

// Invoke implements Invoker. Text content blocks from the tool result are
// concatenated; a tool-side error with no text at all becomes an error.
func (m *MCP) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := m.client.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling tool %s: %w", name, err)
	}

	var sb strings.Builder
	for _, content := range res.Content {
		if tc, ok := mcp.AsTextContent(content); ok {
			sb.WriteString(tc.Text)
		}
	}
	if res.IsError && sb.Len() == 0 {
		return "", fmt.Errorf("tool %s failed with no text content", name)
	}
	return sb.String(), nil
}

// Close shuts down the underlying MCP session.
func (m *MCP) Close() error {
	return m.client.Close()
}
