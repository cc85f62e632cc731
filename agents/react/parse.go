/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package react

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// Action is a tool invocation parsed from model output.
type Action struct {
	Tool string
	Args map[string]any
}

// actionLine matches lines of the form
//
//	Action: search_repositories("go web framework", max_results=10)
//
// The argument list is parsed separately so quoted commas survive.
var actionLine = regexp.MustCompile(`(?m)^\s*Action:\s*([A-Za-z_][A-Za-z0-9_]*)\((.*)\)\s*$`)

// thoughtLine captures the first Thought: line of an iteration response.
var thoughtLine = regexp.MustCompile(`(?m)^\s*Thought:\s*(.+)$`)

// finalAnswerMarker splits a response that decided to stop.
const finalAnswerMarker = "Final Answer:"

// positionalParams maps each tool to its parameter order, so bare
// positional arguments in an Action line get their proper names.
var positionalParams = map[string][]string{
	tools.NameSearch:    {"query", "max_results", "sort", "search_mode"},
	tools.NameInfo:      {"full_name"},
	tools.NameLanguages: {"full_name"},
	tools.NameTree:      {"full_name", "path"},
	tools.NameFile:      {"full_name", "file_path", "max_size"},
}

// ParseAction extracts the first Action line from model output. It returns
// nil when the response contains no action.
func ParseAction(text string) *Action {
	m := actionLine.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	tool := m[1]
	args := make(map[string]any)
	names := positionalParams[tool]
	pos := 0

	for _, raw := range splitArgs(m[2]) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if key, value, ok := keywordArg(raw); ok {
			args[key] = parseValue(value)
			continue
		}

		name := fmt.Sprintf("arg%d", pos+1)
		if pos < len(names) {
			name = names[pos]
		}
		args[name] = parseValue(raw)
		pos++
	}

	return &Action{Tool: tool, Args: args}
}

// ParseThought returns the model's Thought line, or the trimmed response
// when no Thought marker is present.
func ParseThought(text string) string {
	if m := thoughtLine.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// FinalAnswer returns the text after a Final Answer: marker, and whether
// the marker was present.
func FinalAnswer(text string) (string, bool) {
	idx := strings.Index(text, finalAnswerMarker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(text[idx+len(finalAnswerMarker):]), true
}

// splitArgs splits an argument list on commas that are outside quotes.
func splitArgs(s string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			current.WriteRune(r)
		case r == ',':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// keywordArg splits key=value arguments. The = must come before any quote
// so quoted values containing = are left alone.
func keywordArg(s string) (key, value string, ok bool) {
	eq := strings.Index(s, "=")
	if eq < 0 {
		return "", "", false
	}
	if q := strings.IndexAny(s, `"'`); q >= 0 && q < eq {
		return "", "", false
	}
	key = strings.TrimSpace(s[:eq])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(s[eq+1:]), true
}

// parseValue strips quotes from string arguments and converts bare
// integers so numeric parameters keep their type.
func parseValue(s string) any {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
