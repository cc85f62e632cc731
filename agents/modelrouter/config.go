/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package modelrouter

import (
	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
)

// Credentials carries the provider credentials an agent may need.
// Only the fields for the selected provider are consulted.
type Credentials struct {
	// AnthropicAPIKey authenticates claude-* models.
	AnthropicAPIKey string

	// ChatAPIKey authenticates models served through an OpenAI-compatible
	// Chat Completions endpoint (DeepSeek, OpenAI, ...).
	ChatAPIKey string

	// ChatBaseURL overrides the Chat Completions endpoint.
	// Leave empty for the OpenAI default; set to
	// "https://api.deepseek.com" for DeepSeek models.
	ChatBaseURL string
}

// Config defines the configuration for a routed agent instance.
//   - Resp is the structured response type returned by the agent.
//   - CB is the type providing all tool callbacks.
type Config[Resp, CB any] struct {
	// SystemInstructions is the system prompt that defines the agent's role and behavior.
	SystemInstructions *promptbuilder.Prompt

	// UserPrompt is the template for formatting the user's request.
	// The Req type is bound to this template via its Bind method.
	UserPrompt *promptbuilder.Prompt

	// Tools provides all tool definitions for this agent.
	Tools toolcall.ToolProvider[Resp, CB]

	// MaxTokens caps the response size. Zero uses the executor default.
	MaxTokens int64

	// Temperature controls sampling. Zero uses the executor default.
	Temperature float64
}
