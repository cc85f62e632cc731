/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package strategy

import "fmt"

// Counters summarizes loop progress for strategy adjustment. The ReAct loop
// updates these after every iteration.
type Counters struct {
	// Iterations completed so far.
	Iterations int
	// ReposFound lists the repository full names discovered, in order.
	ReposFound []string
	// Analyses is how many repositories have had a detailed info lookup.
	Analyses int
	// LanguageAnalyses is how many repositories have had a language
	// breakdown fetched.
	LanguageAnalyses int
}

// Switch recommends a strategy change when the current one is not paying
// off: a comparison that cannot find enough candidates falls back to broad
// search, and a broad search drowning in results narrows to deep analysis.
// The second return is false when the current strategy should stand.
func Switch(current Strategy, c Counters) (Strategy, bool) {
	if current == Comparison && len(c.ReposFound) < 2 && c.Iterations >= 2 {
		return BroadSearch, true
	}
	if current == BroadSearch && len(c.ReposFound) > 10 {
		return DeepAnalysis, true
	}
	return current, false
}

// Priorities a Suggestion can carry.
const (
	PrioritySearch           = "search"
	PriorityAnalyze          = "analyze"
	PriorityLanguageAnalysis = "language_analysis"
	PriorityConclude         = "conclude"
)

// Suggestion recommends the next tool action in a ReAct iteration.
type Suggestion struct {
	Priority   string
	Reason     string
	TargetRepo string
}

// NextAction suggests what a ReAct iteration should do next, given the
// current strategy and progress. Every strategy starts by searching; after
// that each one has its own appetite for repositories and analyses before
// it is ready to conclude.
func NextAction(s Strategy, c Counters) Suggestion {
	if len(c.ReposFound) == 0 {
		return Suggestion{
			Priority: PrioritySearch,
			Reason:   "no repositories found yet",
		}
	}

	switch s {
	case Comparison:
		// Compare at least two candidates before concluding.
		if c.Analyses < 2 && c.Analyses < len(c.ReposFound) {
			return Suggestion{
				Priority:   PriorityAnalyze,
				Reason:     fmt.Sprintf("compared %d of %d candidates", c.Analyses, min(len(c.ReposFound), 2)),
				TargetRepo: c.ReposFound[c.Analyses],
			}
		}
	case DeepAnalysis:
		if c.Analyses == 0 {
			return Suggestion{
				Priority:   PriorityAnalyze,
				Reason:     "target repository not yet analyzed",
				TargetRepo: c.ReposFound[0],
			}
		}
		if c.LanguageAnalyses == 0 {
			return Suggestion{
				Priority:   PriorityLanguageAnalysis,
				Reason:     "tech stack not yet examined",
				TargetRepo: c.ReposFound[0],
			}
		}
	case TrendAnalysis:
		if len(c.ReposFound) < 5 {
			return Suggestion{
				Priority: PrioritySearch,
				Reason:   fmt.Sprintf("only %d repositories, trend needs a wider sample", len(c.ReposFound)),
			}
		}
	case Solution, BroadSearch:
		if c.Analyses == 0 {
			return Suggestion{
				Priority:   PriorityAnalyze,
				Reason:     "top result not yet analyzed",
				TargetRepo: c.ReposFound[0],
			}
		}
	}

	return Suggestion{
		Priority: PriorityConclude,
		Reason:   "enough information gathered",
	}
}
