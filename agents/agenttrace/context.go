/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// QueryContext provides query-level context for agent executions.
// It is used to enrich metrics and spans with labels for tracking token
// usage and tool calls per search session.
type QueryContext struct {
	Query     string `json:"query,omitempty"`     // Raw user query driving the session
	Mode      string `json:"mode,omitempty"`      // Execution mode: "react" or "plan_execute"
	Strategy  string `json:"strategy,omitempty"`  // Active search strategy (broad_search, comparison, ...)
	Iteration int    `json:"iteration,omitempty"` // Loop iteration number (1, 2, 3, ...)
}

// EnrichAttributes adds query context attributes to the provided base attributes.
// Only BOUNDED labels go into metrics: mode and strategy come from small fixed
// sets, and iteration is capped by the loop limit. The raw query is excluded
// because every distinct query would create a new time series; it remains on
// the QueryContext for traces where cardinality is not a concern.
func (q QueryContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+3)
	copy(attrs, baseAttrs)

	if q.Mode != "" {
		attrs = append(attrs, attribute.String("mode", q.Mode))
	}
	if q.Strategy != "" {
		attrs = append(attrs, attribute.String("strategy", q.Strategy))
	}
	attrs = append(attrs, attribute.Int("iteration", q.Iteration))

	return attrs
}

// contextKey is used for storing query context in context.Context
type contextKey string

const queryContextKey contextKey = "query_context"

// WithQueryContext adds query context to the Go context
func WithQueryContext(ctx context.Context, queryCtx QueryContext) context.Context {
	return context.WithValue(ctx, queryContextKey, queryCtx)
}

// GetQueryContext retrieves query context from the Go context
func GetQueryContext(ctx context.Context) QueryContext {
	if val := ctx.Value(queryContextKey); val != nil {
		if queryCtx, ok := val.(QueryContext); ok {
			return queryCtx
		}
	}
	return QueryContext{}
}

// MetricAttributes enriches metric attributes from the QueryContext carried
// by ctx. It matches the metrics.AttributeEnricher signature so executors can
// register it directly.
func MetricAttributes(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	return GetQueryContext(ctx).EnrichAttributes(baseAttrs)
}
