/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fenced json block",
			input: "Here is the plan:\n```json\n{\"strategy\": \"comparison\"}\n```\nDone.",
			want:  `{"strategy": "comparison"}`,
		},
		{
			name:  "bare json",
			input: "  {\"steps\": []}  ",
			want:  `{"steps": []}`,
		},
		{
			name:  "inline fences",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "plain fences",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty json block",
			input: "```json\n```",
			want:  "",
		},
		{
			name:  "multiline payload",
			input: "```json\n{\n  \"strategy\": \"broad_search\",\n  \"steps\": [1, 2]\n}\n```",
			want:  "{\n  \"strategy\": \"broad_search\",\n  \"steps\": [1, 2]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	type plan struct {
		Strategy string   `json:"strategy"`
		Steps    []string `json:"steps"`
	}

	input := "Thinking...\n```json\n{\"strategy\": \"deep_analysis\", \"steps\": [\"fetch info\", \"fetch languages\"]}\n```"

	got, err := Extract[plan](input)
	if err != nil {
		t.Fatal(err)
	}

	want := plan{
		Strategy: "deep_analysis",
		Steps:    []string{"fetch info", "fetch languages"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractInvalidJSON(t *testing.T) {
	if _, err := Extract[map[string]any]("not json at all"); err == nil {
		t.Error("Extract() succeeded on invalid JSON, want error")
	}
}
