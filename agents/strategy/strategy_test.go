/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package strategy

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		query string
		want  Strategy
	}{
		{"Python machine learning framework", BroadSearch},
		{"Django vs Flask which is better", Comparison},
		{"compare React and Vue performance", Comparison},
		{"latest AI projects", TrendAnalysis},
		{"most popular open source projects of 2024", TrendAnalysis},
		{"how to implement microservice architecture", Solution},
		{"tensorflow/tensorflow", DeepAnalysis},
		{"kubernetes-sigs/kustomize", DeepAnalysis},
		{"rust game engine", BroadSearch},
		// "vs" must match as a word, not inside "canvas".
		{"html canvas library", BroadSearch},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := Select(tc.query); got != tc.want {
				t.Errorf("Select(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     SearchParams
	}{
		{BroadSearch, SearchParams{MaxResults: 10, Sort: "stars"}},
		{Comparison, SearchParams{MaxResults: 6, Sort: "stars"}},
		{TrendAnalysis, SearchParams{MaxResults: 10, Sort: "updated"}},
		{DeepAnalysis, SearchParams{MaxResults: 3, Sort: "stars"}},
		{Solution, SearchParams{MaxResults: 8, Sort: "stars"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.strategy), func(t *testing.T) {
			if got := Params(tc.strategy); got != tc.want {
				t.Errorf("Params(%q) = %+v, want %+v", tc.strategy, got, tc.want)
			}
		})
	}
}
