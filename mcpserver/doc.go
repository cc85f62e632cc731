/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mcpserver exposes the GitHub search service as an MCP server.
// It registers the five repository tools on a mark3labs/mcp-go server
// and supports both stdio and SSE transports.
package mcpserver
