/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolset

import (
	"context"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/params"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// Definitions returns the provider-neutral schemas for the five GitHub
// tools.
func Definitions() []toolcall.Definition {
	return []toolcall.Definition{
		{
			Name:        tools.NameSearch,
			Description: "Search for repositories on GitHub. Advanced mode supports AND, OR, and NOT operators in the query.",
			Parameters: []toolcall.Parameter{
				{Name: "query", Type: "string", Description: "The search query", Required: true},
				{Name: "max_results", Type: "integer", Description: "Maximum number of results to retrieve (default: 5)"},
				{Name: "sort", Type: "string", Description: "Sort criteria (default: stars)", Enum: []string{"stars", "forks", "updated"}},
				{Name: "search_mode", Type: "string", Description: "Query interpretation mode (default: simple)", Enum: []string{"simple", "advanced"}},
			},
		},
		{
			Name:        tools.NameInfo,
			Description: "Get detailed information about a specific repository.",
			Parameters: []toolcall.Parameter{
				{Name: "full_name", Type: "string", Description: "The full name of the repository (e.g., \"owner/repository\")", Required: true},
			},
		},
		{
			Name:        tools.NameLanguages,
			Description: "Get programming languages used in a repository with byte counts and percentages.",
			Parameters: []toolcall.Parameter{
				{Name: "full_name", Type: "string", Description: "The full name of the repository (e.g., \"owner/repository\")", Required: true},
			},
		},
		{
			Name:        tools.NameTree,
			Description: "Get the directory structure of a repository at a specific path.",
			Parameters: []toolcall.Parameter{
				{Name: "full_name", Type: "string", Description: "The full name of the repository (e.g., \"owner/repository\")", Required: true},
				{Name: "path", Type: "string", Description: "The path within the repository (default: repository root)"},
			},
		},
		{
			Name:        tools.NameFile,
			Description: "Get the content of a specific file in a repository.",
			Parameters: []toolcall.Parameter{
				{Name: "full_name", Type: "string", Description: "The full name of the repository (e.g., \"owner/repository\")", Required: true},
				{Name: "file_path", Type: "string", Description: "The path to the file within the repository", Required: true},
				{Name: "max_size", Type: "integer", Description: "Maximum file size to retrieve in bytes (default: 50000)"},
			},
		},
	}
}

// Provider exposes the GitHub tools to the LLM executors through an Invoker.
type Provider[Resp any] struct {
	inv Invoker
}

var _ toolcall.ToolProvider[any, toolcall.EmptyTools] = (*Provider[any])(nil)

// NewProvider wraps an Invoker as a tool provider for responses of type
// Resp.
func NewProvider[Resp any](inv Invoker) *Provider[Resp] {
	return &Provider[Resp]{inv: inv}
}

// Tools implements toolcall.ToolProvider.
func (p *Provider[Resp]) Tools(_ toolcall.EmptyTools) map[string]toolcall.Tool[Resp] {
	defs := Definitions()
	out := make(map[string]toolcall.Tool[Resp], len(defs))
	for _, def := range defs {
		out[def.Name] = toolcall.Tool[Resp]{
			Def:     def,
			Handler: p.handler(),
		}
	}
	return out
}

// handler runs any of the GitHub tools through the invoker and hands the
// text result back to the model.
func (p *Provider[Resp]) handler() func(context.Context, toolcall.ToolCall, *agenttrace.Trace[Resp], *Resp) map[string]any {
	return func(ctx context.Context, call toolcall.ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
		tc := trace.StartToolCall(call.ID, call.Name, call.Args)

		text, err := p.inv.Invoke(ctx, call.Name, call.Args)
		if err != nil {
			tc.Complete(nil, err)
			return params.Error("%s", err)
		}
		tc.Complete(text, nil)
		return map[string]any{"result": text}
	}
}
