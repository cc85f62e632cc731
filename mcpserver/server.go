/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
)

// Version is the server version reported during the MCP handshake.
// Overridden at build time via -ldflags "-X ...mcpserver.Version=v1.2.3".
var Version = "dev"

// Name is the server name reported during the MCP handshake.
const Name = "github-search"

// New builds the MCP server with the five GitHub tools registered
// against the given search service. This is the composition root: all
// tool dependencies are resolved here.
func New(svc *githubsearch.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions()),
	)

	search := newSearchTool(svc)
	s.AddTool(search.Definition(), search.Handle)

	info := newInfoTool(svc)
	s.AddTool(info.Definition(), info.Handle)

	languages := newLanguagesTool(svc)
	s.AddTool(languages.Definition(), languages.Handle)

	tree := newTreeTool(svc)
	s.AddTool(tree.Definition(), tree.Handle)

	file := newFileTool(svc)
	s.AddTool(file.Definition(), file.Handle)

	return s
}

func instructions() string {
	return `GitHub repository search and inspection server.

Start with search_repositories to find candidate repositories, then use
get_repository_info for metadata, get_repository_languages for the tech
stack, get_repository_tree to browse directories, and
get_repository_file_content to read individual files.

file_path arguments must point at files, not directories; use
get_repository_tree to browse directories. Large files are rejected
with the configured size limit in the message.`
}
