/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package react

import (
	"encoding/json"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// Record is one completed Thought/Action/Observation step.
type Record struct {
	Thought     string `json:"thought"`
	Action      string `json:"action,omitempty"`
	Observation string `json:"observation,omitempty"`
}

// State tracks the progress of one ReAct run.
type State struct {
	Query     string
	Strategy  strategy.Strategy
	Iteration int
	History   []Record

	repos            []string
	seen             map[string]bool
	analyses         int
	languageAnalyses int
}

// NewState initializes a run for the query, selecting the search strategy
// from the query text.
func NewState(query string) *State {
	return &State{
		Query:    query,
		Strategy: strategy.Select(query),
		seen:     make(map[string]bool),
	}
}

// Repos lists the repositories discovered so far, in discovery order.
func (s *State) Repos() []string {
	return s.repos
}

// Counters summarizes progress for the strategy layer.
func (s *State) Counters() strategy.Counters {
	return strategy.Counters{
		Iterations:       s.Iteration,
		ReposFound:       s.repos,
		Analyses:         s.analyses,
		LanguageAnalyses: s.languageAnalyses,
	}
}

// Observe records an executed action and updates the discovery counters
// based on what the tool returned. The counters parse the full observation;
// the history keeps a truncated copy.
func (s *State) Observe(thought string, action *Action, observation string) {
	s.History = append(s.History, Record{
		Thought:     thought,
		Action:      renderAction(action),
		Observation: tools.TruncateObservation(observation),
	})
	if action == nil {
		return
	}

	switch action.Tool {
	case tools.NameSearch:
		for _, name := range tools.SearchResultNames(observation) {
			if !s.seen[name] {
				s.seen[name] = true
				s.repos = append(s.repos, name)
			}
		}
	case tools.NameInfo:
		s.analyses++
	case tools.NameLanguages:
		s.languageAnalyses++
	}
}

func renderAction(a *Action) string {
	if a == nil {
		return ""
	}
	args, err := json.Marshal(a.Args)
	if err != nil {
		return a.Tool
	}
	return fmt.Sprintf("%s(%s)", a.Tool, args)
}
