/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package chattool

import (
	"context"
	"testing"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/openai/openai-go/v2"
)

func TestMapBuildsDefinitions(t *testing.T) {
	tools := map[string]toolcall.Tool[string]{
		"get_repository_languages": {
			Def: toolcall.Definition{
				Name:        "get_repository_languages",
				Description: "Get language breakdown for a repository",
				Parameters: []toolcall.Parameter{
					{Name: "full_name", Type: "string", Description: "owner/repo", Required: true},
				},
			},
		},
	}

	converted := Map(tools)
	meta, ok := converted["get_repository_languages"]
	if !ok {
		t.Fatal("missing get_repository_languages")
	}

	fn := meta.Definition.OfFunction
	if fn == nil {
		t.Fatal("expected function tool")
	}
	if fn.Function.Name != "get_repository_languages" {
		t.Errorf("name: got %q", fn.Function.Name)
	}
	props, ok := fn.Function.Parameters["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties: got %T", fn.Function.Parameters["properties"])
	}
	if _, ok := props["full_name"]; !ok {
		t.Error("missing full_name property")
	}
}

func TestMapHandlerDecodesArgs(t *testing.T) {
	var gotCall toolcall.ToolCall
	tools := map[string]toolcall.Tool[string]{
		"search_repositories": {
			Def: toolcall.Definition{Name: "search_repositories"},
			Handler: func(_ context.Context, call toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
				gotCall = call
				return map[string]any{"count": 3}
			},
		},
	}

	meta := Map(tools)["search_repositories"]
	trace := agenttrace.StartTrace[string](context.Background(), "prompt")

	var result string
	resp := meta.Handler(context.Background(), openai.ChatCompletionMessageToolCallUnion{
		ID: "tc1",
		Function: openai.ChatCompletionMessageFunctionToolCallFunction{
			Name:      "search_repositories",
			Arguments: `{"query":"web framework","max_results":5}`,
		},
	}, trace, &result)

	if resp["count"] != 3 {
		t.Errorf("handler response: got %v", resp)
	}
	if gotCall.Args["query"] != "web framework" {
		t.Errorf("args: got %v", gotCall.Args)
	}
	if gotCall.Args["max_results"] != float64(5) {
		t.Errorf("max_results: got %v", gotCall.Args["max_results"])
	}
}

func TestMapHandlerRejectsMalformedArguments(t *testing.T) {
	tools := map[string]toolcall.Tool[string]{
		"search_repositories": {
			Def: toolcall.Definition{Name: "search_repositories"},
			Handler: func(_ context.Context, _ toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
				t.Fatal("handler should not run on malformed arguments")
				return nil
			},
		},
	}

	meta := Map(tools)["search_repositories"]
	trace := agenttrace.StartTrace[string](context.Background(), "prompt")

	var result string
	resp := meta.Handler(context.Background(), openai.ChatCompletionMessageToolCallUnion{
		ID: "tc1",
		Function: openai.ChatCompletionMessageFunctionToolCallFunction{
			Name:      "search_repositories",
			Arguments: "not json",
		},
	}, trace, &result)

	if _, ok := resp["error"]; !ok {
		t.Errorf("expected error response, got %v", resp)
	}
}
