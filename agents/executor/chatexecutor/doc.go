/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package chatexecutor provides a generic executor for agents driven through
// OpenAI-compatible Chat Completions APIs.
//
// It mirrors the claudeexecutor conversation loop: bind the request to the
// prompt template, send the conversation, dispatch tool calls through their
// handlers, feed tool results back, and extract the typed response from the
// final message. Because DeepSeek and several other providers expose the same
// wire protocol, pointing the client at a different base URL is all it takes
// to switch providers:
//
//	client := openai.NewClient(
//	    option.WithAPIKey(apiKey),
//	    option.WithBaseURL("https://api.deepseek.com"),
//	)
//
//	exec, err := chatexecutor.New[*Request, *Response](
//	    client,
//	    prompt,
//	    chatexecutor.WithModel[*Request, *Response]("deepseek-chat"),
//	)
package chatexecutor
