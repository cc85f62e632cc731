/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package planexec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
)

// scriptedPlanner returns a fixed plan.
type scriptedPlanner struct {
	plan Plan
	err  error
	hint strategy.Strategy
}

func (p *scriptedPlanner) Plan(_ context.Context, _ string, hint strategy.Strategy) (Plan, error) {
	p.hint = hint
	return p.plan, p.err
}

// scriptedSummarizer records its prompt and returns a fixed answer.
type scriptedSummarizer struct {
	answer string
	prompt string
}

func (s *scriptedSummarizer) Complete(_ context.Context, _, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, nil
}

// sequenceInvoker replays responses per tool name.
type sequenceInvoker struct {
	results map[string]string
	errs    map[string]error
	calls   []string
	qcs     []agenttrace.QueryContext
}

func (f *sequenceInvoker) Invoke(ctx context.Context, name string, _ map[string]any) (string, error) {
	f.calls = append(f.calls, name)
	f.qcs = append(f.qcs, agenttrace.GetQueryContext(ctx))
	if err, ok := f.errs[name]; ok {
		return "", err
	}
	return f.results[name], nil
}

func newTestAgent(pl planner, sum *scriptedSummarizer, inv *sequenceInvoker, maxSteps int) *Agent {
	return &Agent{
		planner:    pl,
		summarizer: sum,
		tools:      inv,
		maxSteps:   maxSteps,
	}
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name    string
		plan    Plan
		wantErr bool
	}{
		{
			name:    "empty plan",
			plan:    Plan{Strategy: "broad_search"},
			wantErr: true,
		},
		{
			name:    "unknown tool",
			plan:    Plan{Steps: []Step{{Tool: "delete_repository"}}},
			wantErr: true,
		},
		{
			name: "valid plan",
			plan: Plan{Steps: []Step{
				{Tool: "search_repositories", Args: map[string]any{"query": "x"}},
				{Tool: "get_repository_info", Args: map[string]any{"full_name": "a/b"}},
			}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.plan.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRunExecutesPlan(t *testing.T) {
	plan := Plan{
		Strategy: "comparison",
		Steps: []Step{
			{Tool: "search_repositories", Args: map[string]any{"query": "gin vs echo"}, Purpose: "find candidates"},
			{Tool: "get_repository_info", Args: map[string]any{"full_name": "gin-gonic/gin"}},
		},
		SuccessCriteria: []string{"name a winner"},
	}
	pl := &scriptedPlanner{plan: plan}
	sum := &scriptedSummarizer{answer: "gin wins"}
	inv := &sequenceInvoker{results: map[string]string{
		"search_repositories": `["gin-gonic/gin", "labstack/echo"]`,
		"get_repository_info": `{"name": "gin", "stars": 70000}`,
	}}
	agent := newTestAgent(pl, sum, inv, DefaultMaxSteps)

	report, err := agent.Run(context.Background(), "compare gin vs echo")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if pl.hint != strategy.Comparison {
		t.Errorf("strategy hint = %q, want %q", pl.hint, strategy.Comparison)
	}

	wantExec := Execution{
		StepsRun:        2,
		DiscoveredRepos: []string{"gin-gonic/gin", "labstack/echo"},
		Steps: []StepResult{
			{
				Tool:        "search_repositories",
				Args:        map[string]any{"query": "gin vs echo"},
				Purpose:     "find candidates",
				Observation: `["gin-gonic/gin", "labstack/echo"]`,
			},
			{
				Tool:        "get_repository_info",
				Args:        map[string]any{"full_name": "gin-gonic/gin"},
				Observation: `{"name": "gin", "stars": 70000}`,
			},
		},
	}
	if diff := cmp.Diff(wantExec, report.Execution); diff != "" {
		t.Errorf("execution mismatch (-want +got):\n%s", diff)
	}

	if report.FinalAnswer != "gin wins" {
		t.Errorf("FinalAnswer = %q, want %q", report.FinalAnswer, "gin wins")
	}
	for _, want := range []string{"compare gin vs echo", "labstack/echo", "name a winner"} {
		if !strings.Contains(sum.prompt, want) {
			t.Errorf("summary prompt missing %q", want)
		}
	}
}

func TestRunCountsFailures(t *testing.T) {
	pl := &scriptedPlanner{plan: Plan{Steps: []Step{
		{Tool: "search_repositories", Args: map[string]any{"query": "x"}},
		{Tool: "get_repository_info", Args: map[string]any{"full_name": "a/b"}},
	}}}
	inv := &sequenceInvoker{
		results: map[string]string{"search_repositories": `["a/b"]`},
		errs:    map[string]error{"get_repository_info": errors.New("full_name parameter is required")},
	}
	sum := &scriptedSummarizer{answer: "partial"}
	agent := newTestAgent(pl, sum, inv, DefaultMaxSteps)

	report, err := agent.Run(context.Background(), "x")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Execution.Failures != 1 {
		t.Errorf("Failures = %d, want 1", report.Execution.Failures)
	}
	if got := report.Execution.Steps[1].Error; !strings.Contains(got, "full_name") {
		t.Errorf("step error = %q, want the invoker error recorded", got)
	}
}

func TestRunSkipsSearchErrorResults(t *testing.T) {
	pl := &scriptedPlanner{plan: Plan{Steps: []Step{
		{Tool: "search_repositories", Args: map[string]any{"query": "][bad"}},
	}}}
	inv := &sequenceInvoker{results: map[string]string{
		"search_repositories": `["Error searching GitHub repositories: 422 Validation Failed"]`,
	}}
	agent := newTestAgent(pl, &scriptedSummarizer{answer: "nothing found"}, inv, DefaultMaxSteps)

	report, err := agent.Run(context.Background(), "][bad")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := report.Execution.DiscoveredRepos; len(got) != 0 {
		t.Errorf("DiscoveredRepos = %v, want none for a failed search", got)
	}
	if report.Execution.Failures != 0 {
		t.Errorf("Failures = %d, want 0; the tool itself did not error", report.Execution.Failures)
	}
}

func TestRunParsesFullResultsBeforeTruncating(t *testing.T) {
	names := make([]string, 120)
	for i := range names {
		names[i] = fmt.Sprintf("owner-%03d/repo-with-a-fairly-long-name-%03d", i, i)
	}
	observation, err := json.Marshal(names)
	if err != nil {
		t.Fatal(err)
	}

	pl := &scriptedPlanner{plan: Plan{Steps: []Step{
		{Tool: "search_repositories", Args: map[string]any{"query": "everything"}},
	}}}
	inv := &sequenceInvoker{results: map[string]string{
		"search_repositories": string(observation),
	}}
	agent := newTestAgent(pl, &scriptedSummarizer{answer: "ok"}, inv, DefaultMaxSteps)

	report, err := agent.Run(context.Background(), "everything")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := len(report.Execution.DiscoveredRepos); got != len(names) {
		t.Errorf("DiscoveredRepos has %d entries, want %d", got, len(names))
	}
	if got := report.Execution.Steps[0].Observation; !strings.HasSuffix(got, "\n... (truncated)") {
		t.Error("stored observation is not truncated")
	}
}

func TestRunTagsStepsWithQueryContext(t *testing.T) {
	pl := &scriptedPlanner{plan: Plan{
		Strategy: "comparison",
		Steps: []Step{
			{Tool: "search_repositories", Args: map[string]any{"query": "gin vs echo"}},
			{Tool: "get_repository_info", Args: map[string]any{"full_name": "gin-gonic/gin"}},
		},
	}}
	inv := &sequenceInvoker{results: map[string]string{
		"search_repositories": `["gin-gonic/gin"]`,
		"get_repository_info": `{"name": "gin"}`,
	}}
	agent := newTestAgent(pl, &scriptedSummarizer{answer: "gin"}, inv, DefaultMaxSteps)

	if _, err := agent.Run(context.Background(), "compare gin vs echo"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []agenttrace.QueryContext{
		{Query: "compare gin vs echo", Mode: "plan_execute", Strategy: "comparison", Iteration: 1},
		{Query: "compare gin vs echo", Mode: "plan_execute", Strategy: "comparison", Iteration: 2},
	}
	if diff := cmp.Diff(want, inv.qcs); diff != "" {
		t.Errorf("query contexts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunTruncatesOversizedPlans(t *testing.T) {
	var steps []Step
	for i := 0; i < 10; i++ {
		steps = append(steps, Step{Tool: "search_repositories", Args: map[string]any{"query": fmt.Sprintf("q%d", i)}})
	}
	pl := &scriptedPlanner{plan: Plan{Steps: steps}}
	inv := &sequenceInvoker{results: map[string]string{"search_repositories": `[]`}}
	agent := newTestAgent(pl, &scriptedSummarizer{answer: "ok"}, inv, 2)

	report, err := agent.Run(context.Background(), "broad question")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Execution.StepsRun != 2 {
		t.Errorf("StepsRun = %d, want 2", report.Execution.StepsRun)
	}
}

func TestRunRejectsUnusablePlan(t *testing.T) {
	agent := newTestAgent(&scriptedPlanner{plan: Plan{}}, &scriptedSummarizer{}, &sequenceInvoker{}, DefaultMaxSteps)
	if _, err := agent.Run(context.Background(), "x"); err == nil {
		t.Error("Run() succeeded with an empty plan, want error")
	}
}

func TestRunObserverSeesEveryStep(t *testing.T) {
	pl := &scriptedPlanner{plan: Plan{Steps: []Step{
		{Tool: "search_repositories", Args: map[string]any{"query": "x"}},
		{Tool: "get_repository_languages", Args: map[string]any{"full_name": "a/b"}},
	}}}
	inv := &sequenceInvoker{results: map[string]string{
		"search_repositories":      `["a/b"]`,
		"get_repository_languages": `{"repository": "a/b"}`,
	}}
	agent := newTestAgent(pl, &scriptedSummarizer{answer: "ok"}, inv, DefaultMaxSteps)

	var seen []int
	agent.observer = func(step int, _ StepResult) { seen = append(seen, step) }

	if _, err := agent.Run(context.Background(), "x"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("observer steps mismatch (-want +got):\n%s", diff)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(context.Background(), Config{
		PlannerModel:    "",
		SummarizerModel: "deepseek-chat",
	}, &sequenceInvoker{})
	if err == nil {
		t.Error("New() succeeded without a planner model, want error")
	}

	_, err = New(context.Background(), Config{
		PlannerModel:    "deepseek-reasoner",
		SummarizerModel: "deepseek-chat",
		Credentials:     modelrouter.Credentials{ChatAPIKey: "test"},
	}, nil)
	if err == nil {
		t.Error("New() succeeded without a toolset, want error")
	}
}
