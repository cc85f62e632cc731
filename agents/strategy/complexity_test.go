/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package strategy

import (
	"strings"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantScore int
		check     func(t *testing.T, a Analysis)
	}{
		{
			name:      "simple search",
			query:     "Vue components",
			wantScore: 0,
			check: func(t *testing.T, a Analysis) {
				if !a.IsSimpleSearch {
					t.Error("IsSimpleSearch = false, want true")
				}
			},
		},
		{
			name:      "comparison with analysis",
			query:     "Django vs Flask vs FastAPI performance comparison analysis",
			wantScore: 7,
			check: func(t *testing.T, a Analysis) {
				if !a.IsComparison {
					t.Error("IsComparison = false, want true")
				}
				if !a.IsMultiStep {
					t.Error("IsMultiStep = false, want true")
				}
				if a.ComplexKeywords != 1 {
					t.Errorf("ComplexKeywords = %d, want 1", a.ComplexKeywords)
				}
			},
		},
		{
			name:      "specific requirement",
			query:     "how to implement realtime chat",
			wantScore: 1,
			check: func(t *testing.T, a Analysis) {
				if !a.HasRequirements {
					t.Error("HasRequirements = false, want true")
				}
				if a.IsSimpleSearch {
					t.Error("IsSimpleSearch = true, want false")
				}
			},
		},
		{
			name:      "stacked complex keywords",
			query:     "microservice architecture best practices",
			wantScore: 4,
			check: func(t *testing.T, a Analysis) {
				if a.ComplexKeywords != 2 {
					t.Errorf("ComplexKeywords = %d, want 2", a.ComplexKeywords)
				}
			},
		},
		{
			name:      "long query earns a point",
			query:     "find a small library that renders markdown tables nicely in terminal output",
			wantScore: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Analyze(tc.query)
			if a.Score != tc.wantScore {
				t.Errorf("Analyze(%q).Score = %d, want %d", tc.query, a.Score, tc.wantScore)
			}
			if tc.check != nil {
				tc.check(t, a)
			}
		})
	}
}

func TestDecideMode(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantMode   Mode
		wantReason string
	}{
		{
			name:       "simple search runs react",
			query:      "JWT authentication",
			wantMode:   ModeReact,
			wantReason: "simple search",
		},
		{
			name:       "low score runs react",
			query:      "web framework tutorial recommendations",
			wantMode:   ModeReact,
			wantReason: "simple search",
		},
		{
			name:       "high score plans",
			query:      "Django vs Flask vs FastAPI performance comparison analysis",
			wantMode:   ModePlanExecute,
			wantReason: "high complexity score",
		},
		{
			name:       "long query plans",
			query:      "comprehensive guide covering every framework that our team could possibly adopt next year",
			wantMode:   ModePlanExecute,
			wantReason: "long query description",
		},
		{
			name:       "middling score defaults to plan",
			query:      "detailed look at gin router internals",
			wantMode:   ModePlanExecute,
			wantReason: "defaulting to plan-execute",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := DecideMode(tc.query)
			if d.Mode != tc.wantMode {
				t.Errorf("DecideMode(%q).Mode = %q, want %q", tc.query, d.Mode, tc.wantMode)
			}
			if len(d.Reasons) == 0 {
				t.Fatal("DecideMode() returned no reasons")
			}
			if !strings.Contains(d.Reasons[0], tc.wantReason) {
				t.Errorf("reason = %q, want it to mention %q", d.Reasons[0], tc.wantReason)
			}
		})
	}
}
