/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"sync"
	"testing"
)

func TestWithTracer(t *testing.T) {
	ctx := context.Background()
	var traces []*Trace[string]
	tracer := &mockTracer[string]{traces: &traces}

	ctxWithTracer := WithTracer[string](ctx, tracer)

	if retrieved := TracerFromContext[string](ctxWithTracer); retrieved != tracer {
		t.Errorf("retrieved tracer: got = %v, wanted = %v", retrieved, tracer)
	}

	// Without a tracer in context the default tracer should be returned
	if retrieved := TracerFromContext[string](ctx); retrieved == nil {
		t.Error("retrieved tracer from empty context: got = nil, wanted = default tracer")
	}
}

func TestStartTrace(t *testing.T) {
	ctx := context.Background()

	if trace := StartTrace[string](ctx, "find web frameworks"); trace == nil {
		t.Error("start trace without explicit tracer: got = nil, wanted = non-nil trace")
	}

	var traces []*Trace[string]
	tracer := &mockTracer[string]{traces: &traces}
	ctx = WithTracer[string](ctx, tracer)

	const prompt = "compare react and vue"
	if trace := StartTrace[string](ctx, prompt); trace == nil {
		t.Fatal("start trace with tracer in context: got = nil, wanted = non-nil trace")
	} else if trace.InputPrompt != prompt {
		t.Errorf("trace prompt: got = %q, wanted = %q", trace.InputPrompt, prompt)
	}
}

func TestAutoRecordTrace(t *testing.T) {
	ctx := context.Background()
	var traces []*Trace[string]
	tracer := &mockTracer[string]{traces: &traces}
	ctx = WithTracer[string](ctx, tracer)

	trace := StartTrace[string](ctx, "find rust game engines")
	if trace == nil {
		t.Fatal("start trace: got = nil, wanted = non-nil trace")
	}

	tc := trace.StartToolCall("tc1", "search_repositories", map[string]any{"query": "game engine language:rust"})
	tc.Complete("bevyengine/bevy", nil)

	// Should not be recorded until the trace completes
	if len(traces) != 0 {
		t.Errorf("traces before completion: got = %d, wanted = 0", len(traces))
	}

	trace.Complete("done", nil)

	if len(traces) != 1 {
		t.Fatalf("traces after completion: got = %d, wanted = 1", len(traces))
	}

	if recorded := traces[0]; recorded != trace {
		t.Errorf("recorded trace: got = %v, wanted = %v", recorded, trace)
	}
	if got := len(traces[0].ToolCalls); got != 1 {
		t.Errorf("tool calls: got = %d, wanted = 1", got)
	}
}

func TestBadToolCallRecordsError(t *testing.T) {
	ctx := context.Background()
	var traces []*Trace[string]
	ctx = WithTracer[string](ctx, &mockTracer[string]{traces: &traces})

	trace := StartTrace[string](ctx, "analyze repository")
	trace.BadToolCall("tc1", "get_repository_info", nil, context.DeadlineExceeded)
	trace.Complete("done", nil)

	if got := len(traces[0].ToolCalls); got != 1 {
		t.Fatalf("tool calls: got = %d, wanted = 1", got)
	}
	if traces[0].ToolCalls[0].Error == nil {
		t.Error("bad tool call error: got = nil, wanted = non-nil")
	}
}

func TestMultipleTracersWithDifferentTypes(t *testing.T) {
	ctx := context.Background()

	var stringTraces []*Trace[string]
	var intTraces []*Trace[int]

	stringTracer := &mockTracer[string]{traces: &stringTraces}
	intTracer := &mockTracer[int]{traces: &intTraces}

	ctx = WithTracer[string](ctx, stringTracer)
	ctx = WithTracer[int](ctx, intTracer)

	if retrieved := TracerFromContext[string](ctx); retrieved != stringTracer {
		t.Errorf("retrieved string tracer: got = %v, wanted = %v", retrieved, stringTracer)
	}
	if retrieved := TracerFromContext[int](ctx); retrieved != intTracer {
		t.Errorf("retrieved int tracer: got = %v, wanted = %v", retrieved, intTracer)
	}

	stringTrace := StartTrace[string](ctx, "string prompt")
	intTrace := StartTrace[int](ctx, "int prompt")

	stringTrace.Complete("result", nil)
	intTrace.Complete(42, nil)

	if len(stringTraces) != 1 {
		t.Fatalf("string traces count: got = %d, wanted = 1", len(stringTraces))
	}
	if len(intTraces) != 1 {
		t.Fatalf("int traces count: got = %d, wanted = 1", len(intTraces))
	}
	if stringTraces[0].Result != "result" {
		t.Errorf("string trace result: got = %v, wanted = %q", stringTraces[0].Result, "result")
	}
	if intTraces[0].Result != 42 {
		t.Errorf("int trace result: got = %v, wanted = 42", intTraces[0].Result)
	}
}

func TestByCodeInvokesAllCallbacks(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	callback := func(*Trace[string]) {
		mu.Lock()
		calls++
		mu.Unlock()
	}

	tracer := ByCode[string](callback, nil, callback)
	trace := tracer.NewTrace(context.Background(), "prompt")
	trace.Complete("result", nil)

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Errorf("callback invocations: got = %d, wanted = 2", calls)
	}
}

// mockTracer is a generic test implementation of Tracer[T]
type mockTracer[T any] struct {
	traces *[]*Trace[T]
}

func (m *mockTracer[T]) NewTrace(ctx context.Context, prompt string) *Trace[T] {
	return newTraceWithTracer[T](ctx, m, prompt)
}

func (m *mockTracer[T]) RecordTrace(trace *Trace[T]) {
	*m.traces = append(*m.traces, trace)
}
