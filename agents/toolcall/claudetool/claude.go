/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/anthropics/anthropic-sdk-go"
)

// Metadata describes a tool available to the Claude agent.
type Metadata[Response any] struct {
	// Definition is the Anthropic tool definition.
	Definition anthropic.ToolParam

	// Handler is the function that processes tool calls.
	// It receives the context, tool use block, trace, and a result pointer.
	// If the handler sets *result to a non-zero value, the executor will
	// immediately exit with that response.
	Handler func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// Map converts provider-independent tool definitions into Claude metadata.
// Each tool's parameter list becomes the JSON schema Claude expects, and the
// handler is wrapped to decode the tool_use input into a generic argument map.
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

// definition converts a unified Definition into an Anthropic ToolParam.
func definition(def toolcall.Definition) anthropic.ToolParam {
	properties := make(map[string]any, len(def.Parameters))
	var required []string
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
	return anthropic.ToolParam{
		Name:        def.Name,
		Description: anthropic.String(def.Description),
		InputSchema: anthropic.ToolInputSchemaParam{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

// wrapHandler adapts a unified tool handler to the Claude handler signature.
func wrapHandler[Resp any](tool toolcall.Tool[Resp]) func(context.Context, anthropic.ToolUseBlock, *agenttrace.Trace[Resp], *Resp) map[string]any {
	return func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Resp], result *Resp) map[string]any {
		var args map[string]any
		if err := json.Unmarshal(toolUse.Input, &args); err != nil {
			trace.BadToolCall(toolUse.ID, toolUse.Name,
				map[string]any{"input": string(toolUse.Input)},
				fmt.Errorf("parsing tool input: %w", err))
			return Error("Failed to parse tool input: %v", err)
		}
		call := toolcall.ToolCall{
			ID:   toolUse.ID,
			Name: toolUse.Name,
			Args: args,
		}
		return tool.Handler(ctx, call, trace, result)
	}
}

// Error creates an error response map for Claude tool calls
func Error(format string, args ...any) map[string]any {
	return map[string]any{
		"error": fmt.Sprintf(format, args...),
	}
}

// ErrorWithContext creates an error response with additional context
func ErrorWithContext(err error, context map[string]any) map[string]any {
	response := map[string]any{
		"error": err.Error(),
	}
	maps.Copy(response, context)
	return response
}
