/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package chattool converts provider-independent tool definitions into the
// Chat Completions tool format used by OpenAI-compatible APIs (OpenAI,
// DeepSeek, and other providers speaking the same wire protocol).
package chattool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/openai/openai-go/v2"
)

// Metadata describes a tool available to a Chat Completions agent.
type Metadata[Response any] struct {
	// Definition is the Chat Completions tool definition.
	Definition openai.ChatCompletionToolUnionParam

	// Handler is the function that processes tool calls.
	// It receives the context, tool call, trace, and a result pointer.
	// If the handler sets *result to a non-zero value, the executor will
	// immediately exit with that response.
	Handler func(ctx context.Context, call openai.ChatCompletionMessageToolCallUnion, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// Map converts provider-independent tool definitions into Chat Completions metadata.
func Map[Resp any](tools map[string]toolcall.Tool[Resp]) map[string]Metadata[Resp] {
	out := make(map[string]Metadata[Resp], len(tools))
	for name, tool := range tools {
		out[name] = Metadata[Resp]{
			Definition: definition(tool.Def),
			Handler:    wrapHandler(tool),
		}
	}
	return out
}

// definition converts a unified Definition into a Chat Completions function tool.
func definition(def toolcall.Definition) openai.ChatCompletionToolUnionParam {
	properties := make(map[string]any, len(def.Parameters))
	required := []string{}
	for _, p := range def.Parameters {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
		Name:        def.Name,
		Description: openai.String(def.Description),
		Parameters: openai.FunctionParameters{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	})
}

// wrapHandler adapts a unified tool handler to the Chat Completions handler signature.
func wrapHandler[Resp any](tool toolcall.Tool[Resp]) func(context.Context, openai.ChatCompletionMessageToolCallUnion, *agenttrace.Trace[Resp], *Resp) map[string]any {
	return func(ctx context.Context, tc openai.ChatCompletionMessageToolCallUnion, trace *agenttrace.Trace[Resp], result *Resp) map[string]any {
		var args map[string]any
		if raw := tc.Function.Arguments; raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				trace.BadToolCall(tc.ID, tc.Function.Name,
					map[string]any{"input": raw},
					fmt.Errorf("parsing tool arguments: %w", err))
				return map[string]any{
					"error": fmt.Sprintf("Failed to parse tool arguments: %v", err),
				}
			}
		}
		call := toolcall.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		}
		return tool.Handler(ctx, call, trace, result)
	}
}
