/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package react

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
	"github.com/2948841010/BUILD-MY-AGENT/agents/textmodel"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolset"
)

// DefaultMaxIterations caps the loop when no override is configured.
const DefaultMaxIterations = 5

// Observer is notified after every completed iteration.
type Observer func(iteration int, rec Record)

// Report is the outcome of a ReAct run.
type Report struct {
	Query       string            `json:"user_query"`
	Strategy    strategy.Strategy `json:"strategy"`
	Iterations  int               `json:"iterations"`
	Repos       []string          `json:"discovered_repos"`
	FinalAnswer string            `json:"final_answer"`
	History     []Record          `json:"history"`
}

// Agent drives the single-loop research agent.
type Agent struct {
	model         textmodel.Completer
	tools         toolset.Invoker
	maxIterations int
	observer      Observer
}

// Option configures an Agent.
type Option func(*Agent) error

// WithMaxIterations overrides the iteration budget.
func WithMaxIterations(n int) Option {
	return func(a *Agent) error {
		if n <= 0 {
			return errors.New("max iterations must be positive")
		}
		a.maxIterations = n
		return nil
	}
}

// WithObserver registers a callback invoked after each iteration,
// typically to print progress.
func WithObserver(obs Observer) Option {
	return func(a *Agent) error {
		a.observer = obs
		return nil
	}
}

// New creates a ReAct agent over the given model and toolset.
func New(model textmodel.Completer, tools toolset.Invoker, opts ...Option) (*Agent, error) {
	if model == nil {
		return nil, errors.New("model is required")
	}
	if tools == nil {
		return nil, errors.New("toolset is required")
	}

	a := &Agent{
		model:         model,
		tools:         tools,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return a, nil
}

// Run executes the loop for the query and returns the final report.
func (a *Agent) Run(ctx context.Context, query string) (*Report, error) {
	log := clog.FromContext(ctx)
	st := NewState(query)

	log.With("strategy", st.Strategy).
		Infof("Starting ReAct run: %s", query)

	for st.Iteration < a.maxIterations {
		st.Iteration++
		ictx := agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
			Query:     query,
			Mode:      string(strategy.ModeReact),
			Strategy:  string(st.Strategy),
			Iteration: st.Iteration,
		})

		sug := strategy.NextAction(st.Strategy, st.Counters())
		if sug.Priority == strategy.PriorityConclude {
			log.With("iteration", st.Iteration).
				Infof("Concluding early: %s", sug.Reason)
			break
		}

		prompt, err := buildIterationPrompt(st, sug, a.maxIterations)
		if err != nil {
			return nil, fmt.Errorf("building iteration prompt: %w", err)
		}

		text, err := a.model.Complete(ictx, systemInstructions, prompt)
		if err != nil {
			return nil, fmt.Errorf("iteration %d model call: %w", st.Iteration, err)
		}

		thought := ParseThought(text)

		if answer, ok := FinalAnswer(text); ok {
			st.History = append(st.History, Record{Thought: thought})
			a.notify(st)
			return a.report(st, answer), nil
		}

		action := ParseAction(text)
		var observation string
		if action == nil {
			observation = "No action found. Respond with an Action: line or a Final Answer: section."
		} else {
			observation, err = a.tools.Invoke(ictx, action.Tool, action.Args)
			if err != nil {
				observation = fmt.Sprintf("Error: %v", err)
			}
		}

		st.Observe(thought, action, observation)
		a.notify(st)

		if next, switched := strategy.Switch(st.Strategy, st.Counters()); switched {
			log.With("from", st.Strategy).
				With("to", next).
				Info("Switching strategy")
			st.Strategy = next
		}
	}

	// Out of iterations or the strategy layer is satisfied; ask the model
	// for a conclusion over everything gathered so far.
	prompt, err := buildConclusionPrompt(st)
	if err != nil {
		return nil, fmt.Errorf("building conclusion prompt: %w", err)
	}
	cctx := agenttrace.WithQueryContext(ctx, agenttrace.QueryContext{
		Query:     query,
		Mode:      string(strategy.ModeReact),
		Strategy:  string(st.Strategy),
		Iteration: st.Iteration,
	})
	answer, err := a.model.Complete(cctx, systemInstructions, prompt)
	if err != nil {
		return nil, fmt.Errorf("conclusion model call: %w", err)
	}

	return a.report(st, answer), nil
}

func (a *Agent) notify(st *State) {
	if a.observer != nil && len(st.History) > 0 {
		a.observer(st.Iteration, st.History[len(st.History)-1])
	}
}

func (a *Agent) report(st *State, answer string) *Report {
	return &Report{
		Query:       st.Query,
		Strategy:    st.Strategy,
		Iterations:  st.Iteration,
		Repos:       st.Repos(),
		FinalAnswer: answer,
		History:     st.History,
	}
}
