/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package strategy

import (
	"fmt"
	"strings"
)

// Mode is the agent loop used to answer a query.
type Mode string

const (
	// ModeReact runs the single-loop reason/act cycle. Best for quick
	// lookups where planning overhead is not worth it.
	ModeReact Mode = "react"
	// ModePlanExecute plans the whole search up front and then executes
	// the steps. Best for multi-step or comparative work.
	ModePlanExecute Mode = "plan_execute"
)

// Analysis is the complexity breakdown of a query.
type Analysis struct {
	Score             int
	WordCount         int
	IsComparison      bool
	IsMultiStep       bool
	IsComplexAnalysis bool
	HasRequirements   bool
	IsSimpleSearch    bool
	ComplexKeywords   int
}

var (
	multiStepPhrases = []string{"analyze", "analysis", "research", "in-depth", "in depth", "detailed", "comprehensive", "systematic"}
	complexPhrases   = []string{"architecture", "design pattern", "tech stack", "best practice", "performance comparison", "technology selection"}
	requirePhrases   = []string{"how to", "how do i", "implement", "solve", "solution", "tutorial"}
)

// Analyze scores a query's complexity. Comparison intent weighs heaviest,
// followed by multi-step analysis and each complex-technology keyword; long
// queries pick up an extra point. A query of three words or fewer with no
// scoring signals counts as a simple search.
func Analyze(query string) Analysis {
	q := strings.ToLower(query)

	a := Analysis{WordCount: len(strings.Fields(query))}

	if matchesAny(q, comparisonPhrases) {
		a.IsComparison = true
		a.Score += 3
	}
	if matchesAny(q, multiStepPhrases) {
		a.IsMultiStep = true
		a.Score += 2
	}
	for _, phrase := range complexPhrases {
		if strings.Contains(q, phrase) {
			a.ComplexKeywords++
		}
	}
	if a.ComplexKeywords > 0 {
		a.IsComplexAnalysis = true
		a.Score += a.ComplexKeywords * 2
	}
	if matchesAny(q, requirePhrases) {
		a.HasRequirements = true
		a.Score++
	}
	if a.WordCount <= 3 && a.Score == 0 {
		a.IsSimpleSearch = true
	}
	if a.WordCount > 8 {
		a.Score++
	}
	return a
}

// Decision is a mode choice plus the reasons behind it.
type Decision struct {
	Mode     Mode
	Analysis Analysis
	Reasons  []string
}

// DecideMode picks the agent mode for a query. High complexity, combined
// comparison and multi-step intent, stacked technical keywords, and long
// descriptions all route to plan-execute; simple or low-scoring queries run
// the cheaper ReAct loop. Plan-execute is the fallback for everything in
// between.
func DecideMode(query string) Decision {
	a := Analyze(query)
	d := Decision{Analysis: a}

	switch {
	case a.Score >= 4:
		d.Mode = ModePlanExecute
		d.Reasons = append(d.Reasons, fmt.Sprintf("high complexity score (%d >= 4)", a.Score))
	case a.IsComparison && a.IsMultiStep:
		d.Mode = ModePlanExecute
		d.Reasons = append(d.Reasons, "comparison combined with multi-step analysis")
	case a.IsComplexAnalysis && a.ComplexKeywords >= 2:
		d.Mode = ModePlanExecute
		d.Reasons = append(d.Reasons, fmt.Sprintf("complex technical analysis (%d keywords)", a.ComplexKeywords))
	case a.WordCount > 10:
		d.Mode = ModePlanExecute
		d.Reasons = append(d.Reasons, fmt.Sprintf("long query description (%d words > 10)", a.WordCount))
	case a.IsSimpleSearch || a.Score <= 1:
		d.Mode = ModeReact
		d.Reasons = append(d.Reasons, "simple search, single loop is more efficient")
	default:
		d.Mode = ModePlanExecute
		d.Reasons = append(d.Reasons, "defaulting to plan-execute for stability")
	}
	return d
}
