/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package chatexecutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/2948841010/BUILD-MY-AGENT/agents/metrics"
	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/result"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/chattool"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go/v2"
)

// Interface is the public interface for Chat Completions agent execution
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute runs the agent conversation with the given request and tools
	Execute(ctx context.Context, request Request, tools map[string]chattool.Metadata[Response]) (Response, error)
}

// executor provides the private implementation
type executor[Request promptbuilder.Bindable, Response any] struct {
	client             openai.Client
	modelName          string
	systemInstructions *promptbuilder.Prompt
	prompt             *promptbuilder.Prompt
	maxTokens          int64
	temperature        float64
	submitTool         chattool.Metadata[Response] // opt-in: set via WithSubmitResultProvider
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.Config // retry configuration for transient API errors
}

// New creates a new Executor with minimal required configuration
func New[Request promptbuilder.Bindable, Response any](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	// Unified meter across all executors, with model name as a dimension
	genaiMetrics := metrics.NewGenAI("buildmyagent.agents")

	e := &executor[Request, Response]{
		client:       client,
		modelName:    "deepseek-chat",
		prompt:       prompt,
		maxTokens:    8192,
		temperature:  0.1, // Default temperature for consistency
		genaiMetrics: genaiMetrics,
		retryConfig:  retry.DefaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Execute runs the agent conversation with the given request and tools
func (e *executor[Request, Response]) Execute(
	ctx context.Context,
	request Request,
	tools map[string]chattool.Metadata[Response],
) (response Response, err error) {
	log := clog.FromContext(ctx)

	// Bind the request to the prompt
	boundPrompt, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}

	prompt, err := boundPrompt.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() {
		trace.Complete(response, err)
	}()

	log.With("prompt_length", len(prompt)).
		Info("Starting chat agent execution")

	// Merge submit_result tool if configured (opt-in via WithSubmitResultProvider)
	if e.submitTool.Handler != nil {
		mergedTools := make(map[string]chattool.Metadata[Response], len(tools)+1)
		maps.Copy(mergedTools, tools)

		name := e.submitTool.Definition.GetFunction().Name
		if name == "" {
			name = "submit_result"
		}
		if _, exists := mergedTools[name]; !exists {
			mergedTools[name] = e.submitTool
		}
		tools = mergedTools
	}

	// Build tool definitions
	toolDefs := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, meta := range tools {
		toolDefs = append(toolDefs, meta.Definition)
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(e.modelName),
		Messages:            messages,
		Tools:               toolDefs,
		MaxCompletionTokens: openai.Int(e.maxTokens),
		Temperature:         openai.Float(e.temperature),
	}

	// finalResult stores the result if a tool sets it
	var finalResult Response
	finalResultPtr := &finalResult

	// executeToolCall handles executing a single tool call and returning the result
	executeToolCall := func(tc openai.ChatCompletionMessageToolCallUnion) (openai.ChatCompletionMessageParamUnion, error) {
		log.With("tool", tc.Function.Name).
			With("id", tc.ID).
			Info("Executing tool call")

		var result map[string]any

		if meta, ok := tools[tc.Function.Name]; ok {
			result = meta.Handler(ctx, tc, trace, finalResultPtr)
		} else {
			log.With("tool", tc.Function.Name).Error("Unknown tool requested")
			trace.BadToolCall(tc.ID, tc.Function.Name,
				map[string]any{"arguments": tc.Function.Arguments},
				fmt.Errorf("unknown tool: %q", tc.Function.Name))

			result = map[string]any{
				"error": fmt.Sprintf("unknown tool: %q", tc.Function.Name),
			}
		}

		resultBytes, err := json.Marshal(result)
		if err != nil {
			return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("failed to marshal tool result: %w", err)
		}

		return openai.ToolMessage(string(resultBytes), tc.ID), nil
	}

	// Conversation loop
	for {
		// Complete with retry for transient errors
		completion, err := retry.WithBackoff(ctx, e.retryConfig, "chat_completion", isRetryableChatError, func() (*openai.ChatCompletion, error) {
			return e.client.Chat.Completions.New(ctx, params)
		})
		if err != nil {
			return response, fmt.Errorf("failed to complete chat request: %w", err)
		}
		if len(completion.Choices) == 0 {
			return response, errors.New("no choices in chat response")
		}

		// Record token usage in metrics and trace span
		if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.modelName, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
			trace.RecordTokenUsage(e.modelName, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
		}

		message := completion.Choices[0].Message

		if len(message.ToolCalls) > 0 {
			// Add the assistant turn to the conversation
			params.Messages = append(params.Messages, message.ToParam())

			for _, tc := range message.ToolCalls {
				e.genaiMetrics.RecordToolCall(ctx, e.modelName, tc.Function.Name)

				result, err := executeToolCall(tc)
				if err != nil {
					return response, err
				}
				params.Messages = append(params.Messages, result)

				// Check if a tool set the final result
				if !reflect.ValueOf(finalResult).IsZero() {
					log.Info("Tool set final result, exiting conversation loop")
					return finalResult, nil
				}
			}

			continue
		}

		// Parse final response
		if message.Content != "" {
			resp, err := result.Extract[Response](message.Content)
			if err != nil {
				log.With("response", message.Content).
					With("error", err).
					Error("Failed to parse chat response")
				return response, fmt.Errorf("failed to parse response: %w", err)
			}

			log.Info("Successfully completed chat agent execution")
			return resp, nil
		}

		return response, errors.New("no content in chat response")
	}
}
