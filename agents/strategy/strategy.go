/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package strategy

import (
	"regexp"
	"strings"
)

// Strategy identifies a search approach.
type Strategy string

const (
	// BroadSearch casts a wide net over a topic.
	BroadSearch Strategy = "broad_search"
	// Comparison weighs a small set of candidates against each other.
	Comparison Strategy = "comparison"
	// TrendAnalysis looks for what is new or gaining momentum.
	TrendAnalysis Strategy = "trend_analysis"
	// DeepAnalysis digs into one specific repository.
	DeepAnalysis Strategy = "deep_analysis"
	// Solution hunts for repositories that solve a concrete problem.
	Solution Strategy = "solution"
)

// repoSlug matches an exact "owner/repo" reference.
var repoSlug = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// yearRef matches a four-digit year, a strong trend signal.
var yearRef = regexp.MustCompile(`\b20\d{2}\b`)

var (
	comparisonPhrases = []string{"vs", "versus", "compare", "comparison", "difference", "which is better", "better than"}
	trendPhrases      = []string{"newest", "latest", "trending", "most popular", "hottest"}
	solutionPhrases   = []string{"how to", "how do i", "how can i", "implement", "tutorial", "solution", "solve"}
)

// Select picks the search strategy implied by a query.
func Select(query string) Strategy {
	q := strings.ToLower(strings.TrimSpace(query))

	if repoSlug.MatchString(q) {
		return DeepAnalysis
	}
	if matchesAny(q, comparisonPhrases) {
		return Comparison
	}
	if matchesAny(q, trendPhrases) || yearRef.MatchString(q) {
		return TrendAnalysis
	}
	if matchesAny(q, solutionPhrases) {
		return Solution
	}
	return BroadSearch
}

// SearchParams are the search settings a strategy starts with.
type SearchParams struct {
	MaxResults int
	Sort       string
}

// Params returns the search settings a strategy prefers: comparisons and
// deep dives keep the result set small, trend analysis sorts by recency.
func Params(s Strategy) SearchParams {
	switch s {
	case Comparison:
		return SearchParams{MaxResults: 6, Sort: "stars"}
	case TrendAnalysis:
		return SearchParams{MaxResults: 10, Sort: "updated"}
	case DeepAnalysis:
		return SearchParams{MaxResults: 3, Sort: "stars"}
	case Solution:
		return SearchParams{MaxResults: 8, Sort: "stars"}
	default:
		return SearchParams{MaxResults: 10, Sort: "stars"}
	}
}

// matchesAny reports whether the query contains any of the phrases.
// Multi-word phrases match as substrings, single words match whole words
// only, so "vs" does not fire on "canvas".
func matchesAny(query string, phrases []string) bool {
	words := strings.Fields(query)
	for _, phrase := range phrases {
		if strings.ContainsRune(phrase, ' ') {
			if strings.Contains(query, phrase) {
				return true
			}
			continue
		}
		for _, w := range words {
			if strings.Trim(w, ".,!?:;()\"'") == phrase {
				return true
			}
		}
	}
	return false
}
