/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/go-cmp/cmp"
	"github.com/openai/openai-go/v2"
)

type searchReport struct {
	Meta      struct{} `json:"-" submitresult:"name=submit_report,description=Submit the final search report,payload=report"`
	Summary   string   `json:"summary"`
	RepoNames []string `json:"repo_names,omitempty"`
}

func TestOptionsForResponse(t *testing.T) {
	opts := OptionsForResponse[*searchReport]()
	if opts.ToolName != "submit_report" {
		t.Errorf("ToolName: got %q, want %q", opts.ToolName, "submit_report")
	}
	if opts.PayloadFieldName != "report" {
		t.Errorf("PayloadFieldName: got %q, want %q", opts.PayloadFieldName, "report")
	}
}

func TestOptionsForResponseWithoutAnnotations(t *testing.T) {
	type plain struct {
		Summary string `json:"summary"`
	}
	opts := OptionsForResponse[*plain]()
	if opts.ToolName != "" {
		t.Errorf("ToolName: got %q, want empty (defaults applied later)", opts.ToolName)
	}
}

func TestClaudeToolSetsResult(t *testing.T) {
	meta, err := ClaudeToolForResponse[*searchReport]()
	if err != nil {
		t.Fatalf("ClaudeToolForResponse() error = %v", err)
	}
	if meta.Definition.Name != "submit_report" {
		t.Errorf("tool name: got %q", meta.Definition.Name)
	}

	trace := agenttrace.StartTrace[*searchReport](context.Background(), "prompt")

	var result *searchReport
	resp := meta.Handler(context.Background(), anthropic.ToolUseBlock{
		ID:   "tc1",
		Name: "submit_report",
		Input: json.RawMessage(`{
			"reasoning": "search is complete",
			"report": {"summary": "found 3 frameworks", "repo_names": ["gin-gonic/gin"]}
		}`),
	}, trace, &result)

	if resp["success"] != true {
		t.Fatalf("handler response: got %v", resp)
	}
	if result == nil {
		t.Fatal("result not set")
	}
	want := &searchReport{Summary: "found 3 frameworks", RepoNames: []string{"gin-gonic/gin"}}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestClaudeToolRejectsMissingPayload(t *testing.T) {
	meta, err := ClaudeToolForResponse[*searchReport]()
	if err != nil {
		t.Fatalf("ClaudeToolForResponse() error = %v", err)
	}

	trace := agenttrace.StartTrace[*searchReport](context.Background(), "prompt")

	var result *searchReport
	resp := meta.Handler(context.Background(), anthropic.ToolUseBlock{
		ID:    "tc1",
		Name:  "submit_report",
		Input: json.RawMessage(`{"reasoning": "done"}`),
	}, trace, &result)

	if _, ok := resp["error"]; !ok {
		t.Errorf("expected error response, got %v", resp)
	}
	if result != nil {
		t.Error("result should not be set on error")
	}
}

func TestChatToolSetsResult(t *testing.T) {
	meta, err := ChatToolForResponse[*searchReport]()
	if err != nil {
		t.Fatalf("ChatToolForResponse() error = %v", err)
	}
	if got := meta.Definition.GetFunction().Name; got != "submit_report" {
		t.Errorf("tool name: got %q", got)
	}

	trace := agenttrace.StartTrace[*searchReport](context.Background(), "prompt")

	var result *searchReport
	resp := meta.Handler(context.Background(), openai.ChatCompletionMessageToolCallUnion{
		ID: "tc1",
		Function: openai.ChatCompletionMessageFunctionToolCallFunction{
			Name:      "submit_report",
			Arguments: `{"reasoning":"done","report":{"summary":"comparison complete"}}`,
		},
	}, trace, &result)

	if resp["success"] != true {
		t.Fatalf("handler response: got %v", resp)
	}
	if result == nil || result.Summary != "comparison complete" {
		t.Errorf("result: got %+v", result)
	}
}
