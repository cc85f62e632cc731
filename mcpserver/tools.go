/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// searchTool searches GitHub repositories and persists the results.
type searchTool struct {
	svc *githubsearch.Service
}

func newSearchTool(svc *githubsearch.Service) *searchTool {
	return &searchTool{svc: svc}
}

func (t *searchTool) Definition() mcp.Tool {
	return mcp.NewTool(tools.NameSearch,
		mcp.WithDescription("Search for repositories on GitHub. Advanced mode supports AND, OR, and NOT operators in the query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to retrieve"),
			mcp.DefaultNumber(githubsearch.DefaultMaxResults),
		),
		mcp.WithString("sort",
			mcp.Description("Sort criteria"),
			mcp.Enum("stars", "forks", "updated"),
			mcp.DefaultString("stars"),
		),
		mcp.WithString("search_mode",
			mcp.Description("Query interpretation mode"),
			mcp.Enum(githubsearch.ModeSimple, githubsearch.ModeAdvanced),
			mcp.DefaultString(githubsearch.ModeSimple),
		),
	)
}

func (t *searchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := githubsearch.SearchOptions{
		MaxResults: req.GetInt("max_results", githubsearch.DefaultMaxResults),
		Sort:       req.GetString("sort", "stars"),
		Mode:       req.GetString("search_mode", githubsearch.ModeSimple),
	}
	return mcp.NewToolResultText(tools.Search(ctx, t.svc, query, opts)), nil
}

// infoTool returns detailed metadata for one repository.
type infoTool struct {
	svc *githubsearch.Service
}

func newInfoTool(svc *githubsearch.Service) *infoTool {
	return &infoTool{svc: svc}
}

func (t *infoTool) Definition() mcp.Tool {
	return mcp.NewTool(tools.NameInfo,
		mcp.WithDescription("Get detailed information about a specific repository."),
		mcp.WithString("full_name",
			mcp.Required(),
			mcp.Description("The full name of the repository (e.g., \"owner/repository\")"),
		),
	)
}

func (t *infoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fullName, err := req.RequireString("full_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(tools.Info(ctx, t.svc, fullName)), nil
}

// languagesTool reports the language byte breakdown for a repository.
type languagesTool struct {
	svc *githubsearch.Service
}

func newLanguagesTool(svc *githubsearch.Service) *languagesTool {
	return &languagesTool{svc: svc}
}

func (t *languagesTool) Definition() mcp.Tool {
	return mcp.NewTool(tools.NameLanguages,
		mcp.WithDescription("Get programming languages used in a repository with byte counts and percentages."),
		mcp.WithString("full_name",
			mcp.Required(),
			mcp.Description("The full name of the repository (e.g., \"owner/repository\")"),
		),
	)
}

func (t *languagesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fullName, err := req.RequireString("full_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(tools.Languages(ctx, t.svc, fullName)), nil
}

// treeTool lists repository contents at a path.
type treeTool struct {
	svc *githubsearch.Service
}

func newTreeTool(svc *githubsearch.Service) *treeTool {
	return &treeTool{svc: svc}
}

func (t *treeTool) Definition() mcp.Tool {
	return mcp.NewTool(tools.NameTree,
		mcp.WithDescription("Get the directory structure of a repository at a specific path."),
		mcp.WithString("full_name",
			mcp.Required(),
			mcp.Description("The full name of the repository (e.g., \"owner/repository\")"),
		),
		mcp.WithString("path",
			mcp.Description("The path within the repository (default: repository root)"),
			mcp.DefaultString(""),
		),
	)
}

func (t *treeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fullName, err := req.RequireString("full_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path := req.GetString("path", "")
	return mcp.NewToolResultText(tools.Tree(ctx, t.svc, fullName, path)), nil
}

// fileTool fetches the decoded content of a single file.
type fileTool struct {
	svc *githubsearch.Service
}

func newFileTool(svc *githubsearch.Service) *fileTool {
	return &fileTool{svc: svc}
}

func (t *fileTool) Definition() mcp.Tool {
	return mcp.NewTool(tools.NameFile,
		mcp.WithDescription("Get the content of a specific file in a repository."),
		mcp.WithString("full_name",
			mcp.Required(),
			mcp.Description("The full name of the repository (e.g., \"owner/repository\")"),
		),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("The path to the file within the repository"),
		),
		mcp.WithNumber("max_size",
			mcp.Description("Maximum file size to retrieve in bytes"),
			mcp.DefaultNumber(githubsearch.DefaultMaxFileSize),
		),
	)
}

func (t *fileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fullName, err := req.RequireString("full_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filePath, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxSize := req.GetInt("max_size", githubsearch.DefaultMaxFileSize)
	return mcp.NewToolResultText(tools.File(ctx, t.svc, fullName, filePath, maxSize)), nil
}
