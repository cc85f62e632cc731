/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/go-cmp/cmp"
)

func TestMapBuildsDefinitions(t *testing.T) {
	tools := map[string]toolcall.Tool[string]{
		"search_repositories": {
			Def: toolcall.Definition{
				Name:        "search_repositories",
				Description: "Search GitHub repositories",
				Parameters: []toolcall.Parameter{
					{Name: "query", Type: "string", Description: "Search query", Required: true},
					{Name: "max_results", Type: "integer", Description: "Result cap"},
					{Name: "sort", Type: "string", Description: "Sort field", Enum: []string{"stars", "forks", "updated"}},
				},
			},
		},
	}

	converted := Map(tools)
	meta, ok := converted["search_repositories"]
	if !ok {
		t.Fatal("missing search_repositories")
	}

	def := meta.Definition
	if def.Name != "search_repositories" {
		t.Errorf("name: got %q", def.Name)
	}
	props, ok := def.InputSchema.Properties.(map[string]any)
	if !ok {
		t.Fatalf("properties type: got %T", def.InputSchema.Properties)
	}
	query, ok := props["query"].(map[string]any)
	if !ok {
		t.Fatal("missing query property")
	}
	if query["type"] != "string" {
		t.Errorf("query type: got %v", query["type"])
	}
	sortProp := props["sort"].(map[string]any)
	if diff := cmp.Diff([]string{"stars", "forks", "updated"}, sortProp["enum"]); diff != "" {
		t.Errorf("sort enum mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"query"}, def.InputSchema.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestMapHandlerDecodesArgs(t *testing.T) {
	var gotCall toolcall.ToolCall
	tools := map[string]toolcall.Tool[string]{
		"get_repository_info": {
			Def: toolcall.Definition{Name: "get_repository_info"},
			Handler: func(_ context.Context, call toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
				gotCall = call
				return map[string]any{"ok": true}
			},
		},
	}

	meta := Map(tools)["get_repository_info"]
	trace := agenttrace.StartTrace[string](context.Background(), "prompt")

	var result string
	resp := meta.Handler(context.Background(), anthropic.ToolUseBlock{
		ID:    "tc1",
		Name:  "get_repository_info",
		Input: json.RawMessage(`{"full_name":"golang/go"}`),
	}, trace, &result)

	if resp["ok"] != true {
		t.Errorf("handler response: got %v", resp)
	}
	if gotCall.ID != "tc1" || gotCall.Name != "get_repository_info" {
		t.Errorf("call identity: got %+v", gotCall)
	}
	if gotCall.Args["full_name"] != "golang/go" {
		t.Errorf("args: got %v", gotCall.Args)
	}
}

func TestMapHandlerRejectsMalformedInput(t *testing.T) {
	tools := map[string]toolcall.Tool[string]{
		"get_repository_info": {
			Def: toolcall.Definition{Name: "get_repository_info"},
			Handler: func(_ context.Context, _ toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
				t.Fatal("handler should not run on malformed input")
				return nil
			},
		},
	}

	meta := Map(tools)["get_repository_info"]
	trace := agenttrace.StartTrace[string](context.Background(), "prompt")

	var result string
	resp := meta.Handler(context.Background(), anthropic.ToolUseBlock{
		ID:    "tc1",
		Name:  "get_repository_info",
		Input: json.RawMessage(`not json`),
	}, trace, &result)

	if _, ok := resp["error"]; !ok {
		t.Errorf("expected error response, got %v", resp)
	}
}

func TestParams(t *testing.T) {
	cp, errResp := NewParams(anthropic.ToolUseBlock{
		Input: json.RawMessage(`{"query":"web framework","max_results":10}`),
	})
	if errResp != nil {
		t.Fatalf("NewParams() error = %v", errResp)
	}

	query, errResp := Param[string](cp, "query")
	if errResp != nil {
		t.Fatalf("Param(query) error = %v", errResp)
	}
	if query != "web framework" {
		t.Errorf("query: got %q", query)
	}

	maxResults, errResp := OptionalParam(cp, "max_results", 5)
	if errResp != nil {
		t.Fatalf("OptionalParam(max_results) error = %v", errResp)
	}
	if maxResults != 10 {
		t.Errorf("max_results: got %d, want 10", maxResults)
	}

	sort, errResp := OptionalParam(cp, "sort", "stars")
	if errResp != nil {
		t.Fatalf("OptionalParam(sort) error = %v", errResp)
	}
	if sort != "stars" {
		t.Errorf("sort: got %q, want default stars", sort)
	}

	if _, errResp := Param[string](cp, "missing"); errResp == nil {
		t.Error("Param(missing): expected error response")
	}
}
