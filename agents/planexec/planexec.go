/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package planexec

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
	"github.com/2948841010/BUILD-MY-AGENT/agents/textmodel"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolset"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// DefaultMaxSteps caps how many plan steps the executor will run.
const DefaultMaxSteps = 8

// StepResult is the outcome of one executed plan step.
type StepResult struct {
	Tool        string         `json:"tool"`
	Args        map[string]any `json:"args"`
	Purpose     string         `json:"purpose,omitempty"`
	Observation string         `json:"observation"`
	Error       string         `json:"error,omitempty"`
}

// Execution reports what running the plan actually did.
type Execution struct {
	StepsRun        int          `json:"steps_run"`
	Failures        int          `json:"failures"`
	DiscoveredRepos []string     `json:"discovered_repos"`
	Steps           []StepResult `json:"steps"`
}

// Report is the outcome of a plan-and-execute run.
type Report struct {
	Query       string    `json:"user_query"`
	Plan        Plan      `json:"plan"`
	Execution   Execution `json:"execution"`
	FinalAnswer string    `json:"final_answer"`
}

// Observer is notified after every executed step.
type Observer func(step int, res StepResult)

// Config selects the two models of the dual-model setup.
type Config struct {
	// PlannerModel produces the structured plan.
	PlannerModel string
	// SummarizerModel writes the final answer from the observations.
	SummarizerModel string
	// Credentials for both providers.
	Credentials modelrouter.Credentials
	// MaxSteps caps plan execution. Zero uses DefaultMaxSteps.
	MaxSteps int
}

// planner abstracts the modelrouter agent so tests can script plans.
type planner interface {
	Plan(ctx context.Context, query string, hint strategy.Strategy) (Plan, error)
}

// routedPlanner drives the planner model through the modelrouter.
type routedPlanner struct {
	agent modelrouter.Agent[*planRequest, Plan, toolcall.EmptyTools]
}

func newRoutedPlanner(ctx context.Context, model string, creds modelrouter.Credentials, inv toolset.Invoker) (*routedPlanner, error) {
	agent, err := modelrouter.New[*planRequest, Plan, toolcall.EmptyTools](ctx, model, creds, modelrouter.Config[Plan, toolcall.EmptyTools]{
		SystemInstructions: plannerInstructions,
		UserPrompt:         plannerPrompt,
		Tools:              toolset.NewProvider[Plan](inv),
	})
	if err != nil {
		return nil, fmt.Errorf("creating planner agent: %w", err)
	}
	return &routedPlanner{agent: agent}, nil
}

func (p *routedPlanner) Plan(ctx context.Context, query string, hint strategy.Strategy) (Plan, error) {
	return p.agent.Execute(ctx, &planRequest{Query: query, Strategy: hint}, toolcall.EmptyTools{})
}

// Agent runs the dual-stage loop.
type Agent struct {
	planner    planner
	summarizer textmodel.Completer
	tools      toolset.Invoker
	maxSteps   int
	observer   Observer
}

// Option configures an Agent.
type Option func(*Agent) error

// WithObserver registers a callback invoked after each executed step.
func WithObserver(obs Observer) Option {
	return func(a *Agent) error {
		a.observer = obs
		return nil
	}
}

// New builds the dual-model agent from the configuration.
func New(ctx context.Context, cfg Config, inv toolset.Invoker, opts ...Option) (*Agent, error) {
	if inv == nil {
		return nil, errors.New("toolset is required")
	}

	pl, err := newRoutedPlanner(ctx, cfg.PlannerModel, cfg.Credentials, inv)
	if err != nil {
		return nil, err
	}
	summarizer, err := textmodel.New(cfg.SummarizerModel, cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("creating summarizer: %w", err)
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	a := &Agent{
		planner:    pl,
		summarizer: summarizer,
		tools:      inv,
		maxSteps:   maxSteps,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return a, nil
}

// Run plans, executes, and summarizes an answer for the query.
func (a *Agent) Run(ctx context.Context, query string) (*Report, error) {
	log := clog.FromContext(ctx)
	hint := strategy.Select(query)

	log.With("strategy_hint", hint).
		Infof("Planning research for: %s", query)

	pctx := agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
		Query:    query,
		Mode:     string(strategy.ModePlanExecute),
		Strategy: string(hint),
	})
	plan, err := a.planner.Plan(pctx, query, hint)
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("planner returned an unusable plan: %w", err)
	}
	if len(plan.Steps) > a.maxSteps {
		log.Warnf("Plan has %d steps, truncating to %d", len(plan.Steps), a.maxSteps)
		plan.Steps = plan.Steps[:a.maxSteps]
	}

	exec := a.execute(ctx, query, plan)

	sctx := agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
		Query:     query,
		Mode:      string(strategy.ModePlanExecute),
		Strategy:  plan.Strategy,
		Iteration: exec.StepsRun,
	})
	answer, err := a.summarize(sctx, query, plan, exec)
	if err != nil {
		return nil, err
	}

	return &Report{
		Query:       query,
		Plan:        plan,
		Execution:   exec,
		FinalAnswer: answer,
	}, nil
}

func (a *Agent) execute(ctx context.Context, query string, plan Plan) Execution {
	log := clog.FromContext(ctx)
	exec := Execution{DiscoveredRepos: []string{}}
	seen := make(map[string]bool)

	for i, step := range plan.Steps {
		res := StepResult{
			Tool:    step.Tool,
			Args:    step.Args,
			Purpose: step.Purpose,
		}

		sctx := agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
			Query:     query,
			Mode:      string(strategy.ModePlanExecute),
			Strategy:  plan.Strategy,
			Iteration: i + 1,
		})
		observation, err := a.tools.Invoke(sctx, step.Tool, step.Args)
		if err != nil {
			res.Error = err.Error()
			exec.Failures++
			log.With("step", i+1).
				With("tool", step.Tool).
				Errorf("Step failed: %v", err)
		} else {
			// Parse the full observation before truncating it for the
			// summary prompt; an error result parses to no names.
			res.Observation = tools.TruncateObservation(observation)
			if step.Tool == tools.NameSearch {
				for _, name := range tools.SearchResultNames(observation) {
					if !seen[name] {
						seen[name] = true
						exec.DiscoveredRepos = append(exec.DiscoveredRepos, name)
					}
				}
			}
		}

		exec.StepsRun++
		exec.Steps = append(exec.Steps, res)
		if a.observer != nil {
			a.observer(i+1, res)
		}
	}

	return exec
}

const summarizerInstructions = `You are a research analyst. You write final answers about GitHub
repositories strictly from the observations you are given.`

func (a *Agent) summarize(ctx context.Context, query string, plan Plan, exec Execution) (string, error) {
	prompt, err := buildSummaryPrompt(query, plan, exec)
	if err != nil {
		return "", fmt.Errorf("building summary prompt: %w", err)
	}
	answer, err := a.summarizer.Complete(ctx, summarizerInstructions, prompt)
	if err != nil {
		return "", fmt.Errorf("summary model call: %w", err)
	}
	return answer, nil
}
