/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace provides tracing infrastructure for LLM agent interactions.

# Overview

This package contains the foundational types for tracking agent executions:

  - QueryContext: Query-level metadata (query, mode, strategy, iteration) for trace enrichment
  - Trace[T]: Complete agent interaction from prompt to result
  - ToolCall[T]: Individual tool invocation within a trace
  - Tracer[T]: Interface for creating and managing traces

Every trace and tool call opens an OpenTelemetry span, so agent sessions show
up in whatever trace backend the binary is wired to. Without an exporter the
spans are no-ops and the in-memory trace record still accumulates.

# Usage

Set query context for trace enrichment:

	ctx = agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
		Query:    "compare react and vue",
		Mode:     "plan_execute",
		Strategy: "comparison",
	})

Create and use traces:

	tracer := agenttrace.ByCode[string](func(trace *agenttrace.Trace[string]) {
		log.Printf("Trace completed: %s", trace.ID)
	})
	ctx = agenttrace.WithTracer[string](ctx, tracer)

	trace := agenttrace.StartTrace[string](ctx, "Find popular Go web frameworks")
	toolCall := trace.StartToolCall("tc1", "search_repositories", map[string]any{
		"query": "web framework language:go",
	})
	toolCall.Complete("gin-gonic/gin: ...", nil)
	trace.Complete("Analysis complete", nil)
*/
package agenttrace
