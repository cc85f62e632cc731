/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package textmodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// chatCompleter speaks the OpenAI-compatible Chat Completions protocol.
type chatCompleter struct {
	client   openai.Client
	model    string
	settings settings
}

func newChatCompleter(model string, creds modelrouter.Credentials, s settings) *chatCompleter {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(creds.ChatAPIKey),
	}
	if creds.ChatBaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(creds.ChatBaseURL))
	}
	return &chatCompleter{
		client:   openai.NewClient(clientOpts...),
		model:    model,
		settings: s,
	}
}

func (c *chatCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(c.settings.maxTokens),
		Temperature:         openai.Float(c.settings.temperature),
	}

	completion, err := retry.WithBackoff(ctx, c.settings.retryConfig, "chat_completion", isRetryableChatError, func() (*openai.ChatCompletion, error) {
		return c.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete chat request: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in chat response")
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		c.settings.genaiMetrics.RecordTokens(ctx, c.model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	return completion.Choices[0].Message.Content, nil
}
