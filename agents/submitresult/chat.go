/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/chattool"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/params"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go/v2"
)

// ChatTool constructs the Chat Completions metadata for the submit_result tool.
func ChatTool[Response any](opts Options[Response]) (chattool.Metadata[Response], error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return chattool.Metadata[Response]{}, err
	}

	responseSchema := opts.schemaForResponse()
	responseSchema.Description = opts.PayloadDescription

	payloadSchema, err := schemaToMap(responseSchema)
	if err != nil {
		return chattool.Metadata[Response]{}, fmt.Errorf("convert payload schema: %w", err)
	}

	handler := func(ctx context.Context, tc openai.ChatCompletionMessageToolCallUnion, trace *agenttrace.Trace[Response], result *Response) map[string]any {
		log := clog.FromContext(ctx)

		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			trace.BadToolCall(tc.ID, tc.Function.Name, map[string]any{
				"arguments": tc.Function.Arguments,
			}, errors.New("parameter error"))
			return params.Error("Failed to parse tool arguments: %v", err)
		}

		reasoning, rErr := params.Extract[string](args, "reasoning")
		if rErr != nil {
			trace.BadToolCall(tc.ID, tc.Function.Name, args, errors.New("parameter error"))
			return params.Error("%s", rErr)
		}

		payloadRaw, pErr := params.Extract[map[string]any](args, opts.PayloadFieldName)
		if pErr != nil {
			trace.BadToolCall(tc.ID, tc.Function.Name, args, errors.New("parameter error"))
			return params.Error("%s", pErr)
		}

		log.With("reasoning", reasoning).Info("Submitting result")

		call := trace.StartToolCall(tc.ID, tc.Function.Name, args)

		parsed, err := decodePayload[Response](payloadRaw)
		if err != nil {
			call.Complete(nil, err)
			return params.Error("failed to decode payload: %v", err)
		}

		*result = parsed

		success := map[string]any{
			"success": true,
			"message": opts.SuccessMessage,
		}

		call.Complete(success, nil)
		return success
	}

	return chattool.Metadata[Response]{
		Definition: openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        opts.ToolName,
			Description: openai.String(opts.Description),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"reasoning": map[string]any{
						"type":        "string",
						"description": "Explain why you are confident this result is complete and accurate.",
					},
					opts.PayloadFieldName: payloadSchema,
				},
				"required": []string{"reasoning", opts.PayloadFieldName},
			},
		}),
		Handler: handler,
	}, nil
}

// ChatToolForResponse constructs the submit_result tool using metadata
// inferred from the response type annotations.
func ChatToolForResponse[Response any]() (chattool.Metadata[Response], error) {
	return ChatTool(OptionsForResponse[Response]())
}
