/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package modelrouter selects an executor implementation from a model name.
// Agents declare their request, response, and tool callback types once; the
// router wires up the Anthropic or OpenAI-compatible executor behind a common
// interface so callers never touch provider SDKs directly.
package modelrouter

import (
	"context"
	"fmt"
	"strings"

	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
)

// Agent is the interface for a configured routed agent.
//   - Req must implement promptbuilder.Bindable.
//   - Resp is the structured response type.
//   - CB is the type providing all tool callbacks.
type Agent[Req promptbuilder.Bindable, Resp, CB any] interface {
	// Execute runs the agent with the given request and tool callbacks.
	Execute(ctx context.Context, request Req, callbacks CB) (Resp, error)
}

// New creates a new routed agent with the given configuration.
// The model parameter determines which provider implementation is used:
//   - Models starting with "claude-" use Anthropic's SDK
//   - Everything else is assumed to speak the OpenAI-compatible Chat
//     Completions protocol (deepseek-chat, gpt-4o, ...)
func New[Req promptbuilder.Bindable, Resp, CB any](
	ctx context.Context,
	model string,
	creds Credentials,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if config.UserPrompt == nil {
		return nil, fmt.Errorf("user prompt is required")
	}

	if strings.HasPrefix(strings.ToLower(model), "claude-") {
		return newClaudeAgent[Req, Resp, CB](ctx, model, creds, config)
	}
	return newChatAgent[Req, Resp, CB](ctx, model, creds, config)
}
