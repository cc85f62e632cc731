/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor provides a generic executor for Claude-based agents
// that reduces boilerplate while maintaining flexibility for agent-specific
// logic.
//
// The executor handles the common conversation loop pattern including:
//   - Prompt rendering from templates
//   - Message streaming and accumulation
//   - Tool call execution and response handling
//   - JSON response parsing
//   - Trace management and token metrics
//
// # Basic Usage
//
// Create an executor with a client and prompt template:
//
//	client := anthropic.NewClient(
//	    option.WithAPIKey(apiKey),
//	)
//
//	prompt := promptbuilder.MustPrompt("Find repositories for: {{query}}")
//
//	exec, err := claudeexecutor.New[*Request, *Response](
//	    client,
//	    prompt,
//	    claudeexecutor.WithModel[*Request, *Response]("claude-sonnet-4-5"),
//	    claudeexecutor.WithMaxTokens[*Request, *Response](16000),
//	)
//	if err != nil {
//	    return nil, err
//	}
//
//	// Tools are declared once in provider-independent form and converted:
//	tools := claudetool.Map(provider.Tools(callbacks))
//
//	response, err := exec.Execute(ctx, request, tools)
//
// # Options
//
// The executor supports several configuration options:
//   - WithModel: Override the default model (defaults to claude-sonnet-4-5)
//   - WithMaxTokens: Set maximum response tokens (defaults to 8192)
//   - WithTemperature: Set response temperature (defaults to 0.1)
//   - WithSystemInstructions: Provide system-level instructions
//   - WithThinking: Enable extended thinking mode with a token budget
//   - WithSubmitResultProvider: Register a submit_result tool for structured output
//   - WithRetryConfig: Tune backoff for 429/529 responses
//
// # Extended Thinking
//
// Extended thinking allows Claude to show its internal reasoning process
// before responding. When enabled, reasoning blocks are captured in the trace
// as []agenttrace.ReasoningContent. Temperature is automatically set to 1.0
// as required by the Claude API.
//
// # Type Safety
//
// The executor is generic over Request and Response types, ensuring type
// safety throughout the conversation. The trace parameter in tool handlers is
// properly typed with the Response type.
package claudeexecutor
