/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
)

func TestQueryContextRoundTrip(t *testing.T) {
	want := QueryContext{
		Query:     "compare gin and echo",
		Mode:      "plan_execute",
		Strategy:  "comparison",
		Iteration: 2,
	}

	ctx := WithQueryContext(context.Background(), want)
	got := GetQueryContext(ctx)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetQueryContext() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetQueryContextEmpty(t *testing.T) {
	got := GetQueryContext(context.Background())
	if diff := cmp.Diff(QueryContext{}, got); diff != "" {
		t.Errorf("GetQueryContext() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnrichAttributes(t *testing.T) {
	base := []attribute.KeyValue{attribute.String("model", "claude-sonnet-4-5")}

	tests := []struct {
		name string
		qc   QueryContext
		want []attribute.KeyValue
	}{{
		name: "full context",
		qc:   QueryContext{Query: "find ml frameworks", Mode: "react", Strategy: "broad_search", Iteration: 3},
		want: []attribute.KeyValue{
			attribute.String("model", "claude-sonnet-4-5"),
			attribute.String("mode", "react"),
			attribute.String("strategy", "broad_search"),
			attribute.Int("iteration", 3),
		},
	}, {
		name: "empty context still records iteration",
		qc:   QueryContext{},
		want: []attribute.KeyValue{
			attribute.String("model", "claude-sonnet-4-5"),
			attribute.Int("iteration", 0),
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.qc.EnrichAttributes(base)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(attribute.Value{})); diff != "" {
				t.Errorf("EnrichAttributes() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// The raw query never becomes a metric label
	got := (QueryContext{Query: "something unique"}).EnrichAttributes(nil)
	for _, kv := range got {
		if kv.Key == "query" {
			t.Error("EnrichAttributes() included query, want it excluded")
		}
	}
}

func TestMetricAttributesReadsContext(t *testing.T) {
	ctx := WithQueryContext(context.Background(), QueryContext{
		Mode:      "react",
		Strategy:  "broad_search",
		Iteration: 1,
	})
	base := []attribute.KeyValue{attribute.String("model", "deepseek-chat")}

	want := []attribute.KeyValue{
		attribute.String("model", "deepseek-chat"),
		attribute.String("mode", "react"),
		attribute.String("strategy", "broad_search"),
		attribute.Int("iteration", 1),
	}
	got := MetricAttributes(ctx, base)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(attribute.Value{})); diff != "" {
		t.Errorf("MetricAttributes() mismatch (-want +got):\n%s", diff)
	}
}
