/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines provider-independent tool types for LLM agents.
//
// A Tool pairs a Definition (name, description, parameters) with a single
// Handler that works regardless of which LLM provider drives the
// conversation. The executors convert Definitions into SDK-specific tool
// schemas and route tool_use blocks back through the Handler, so a GitHub
// search tool is declared once and served to both the Anthropic and
// OpenAI-compatible paths.
//
// Handlers extract arguments with Param and OptionalParam, which wrap the
// params subpackage and record malformed calls on the trace:
//
//	query, errResp := toolcall.Param[string](call, trace, "query")
//	if errResp != nil {
//		return errResp
//	}
//	maxResults, errResp := toolcall.OptionalParam(call, "max_results", 5)
package toolcall
