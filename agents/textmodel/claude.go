/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package textmodel

import (
	"context"
	"fmt"
	"strings"

	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeCompleter uses the Anthropic Messages API.
type claudeCompleter struct {
	client   anthropic.Client
	model    string
	settings settings
}

func newClaudeCompleter(model string, creds modelrouter.Credentials, s settings) *claudeCompleter {
	return &claudeCompleter{
		client:   anthropic.NewClient(option.WithAPIKey(creds.AnthropicAPIKey)),
		model:    model,
		settings: s,
	}
}

func (c *claudeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.settings.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	}
	params.Temperature = anthropic.Float(c.settings.temperature)
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := retry.WithBackoff(ctx, c.settings.retryConfig, "message", isRetryableClaudeError, func() (*anthropic.Message, error) {
		return c.client.Messages.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete Claude request: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		c.settings.genaiMetrics.RecordTokens(ctx, c.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var text strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}
	return text.String(), nil
}
