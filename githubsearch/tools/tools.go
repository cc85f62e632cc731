/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package tools renders the GitHub search operations as tool results.
//
// Every tool returns text: JSON for successful calls, a human-readable
// message for well-known failures such as a missing repository or an
// oversized file. The MCP server handlers and the agent's local invoker both
// go through this package so the two paths cannot drift apart.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
)

// Canonical tool names.
const (
	NameSearch    = "search_repositories"
	NameInfo      = "get_repository_info"
	NameLanguages = "get_repository_languages"
	NameTree      = "get_repository_tree"
	NameFile      = "get_repository_file_content"
)

// searchErrorPrefix marks the single-element list Search renders on failure.
const searchErrorPrefix = "Error searching GitHub repositories: "

// MaxObservationChars bounds how much of a tool result the agents carry in
// their working history. Full file contents would crowd out everything else.
const MaxObservationChars = 2000

// Search runs a repository search and renders the matching full names as a
// JSON list. A failed search renders a single-element list carrying the
// error message.
func Search(ctx context.Context, svc *githubsearch.Service, query string, opts githubsearch.SearchOptions) string {
	names, err := svc.SearchRepositories(ctx, query, opts)
	if err != nil {
		return renderJSON([]string{searchErrorPrefix + err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return renderJSON(names)
}

// Info renders repository details, from the local store when available.
func Info(ctx context.Context, svc *githubsearch.Service, fullName string) string {
	v, err := svc.RepositoryInfo(ctx, fullName)
	if err != nil {
		if msg, ok := messageText(err); ok {
			return msg
		}
		return fmt.Sprintf("Error fetching repository info from GitHub: %v", err)
	}
	return renderJSON(v)
}

// Languages renders a repository's language breakdown.
func Languages(ctx context.Context, svc *githubsearch.Service, fullName string) string {
	v, err := svc.Languages(ctx, fullName)
	if err != nil {
		if msg, ok := messageText(err); ok {
			return msg
		}
		return fmt.Sprintf("Error fetching language data from GitHub: %v", err)
	}
	return renderJSON(v)
}

// Tree renders the contents of a repository path.
func Tree(ctx context.Context, svc *githubsearch.Service, fullName, path string) string {
	v, err := svc.Tree(ctx, fullName, path)
	if err != nil {
		if msg, ok := messageText(err); ok {
			return msg
		}
		return fmt.Sprintf("Error fetching repository tree from GitHub: %v", err)
	}
	return renderJSON(v)
}

// File renders a file's decoded content and metadata.
func File(ctx context.Context, svc *githubsearch.Service, fullName, filePath string, maxSize int) string {
	v, err := svc.File(ctx, fullName, filePath, maxSize)
	if err != nil {
		if msg, ok := messageText(err); ok {
			return msg
		}
		return fmt.Sprintf("Error fetching file content from GitHub: %v", err)
	}
	return renderJSON(v)
}

// messageText returns the user-facing message for failures that are part of
// the tool contract rather than transport problems.
func messageText(err error) (string, bool) {
	var (
		notFound     *githubsearch.NotFoundError
		pathNotFound *githubsearch.PathNotFoundError
		fileNotFound *githubsearch.FileNotFoundError
		notFile      *githubsearch.NotFileError
		tooLarge     *githubsearch.TooLargeError
	)
	switch {
	case errors.As(err, &notFound),
		errors.As(err, &pathNotFound),
		errors.As(err, &fileNotFound),
		errors.As(err, &notFile),
		errors.As(err, &tooLarge):
		return err.Error(), true
	}
	return "", false
}

// SearchResultNames parses a Search result back into repository full names.
// It returns nil for an error result or anything that is not a JSON list of
// strings, so callers never mistake a failure message for a discovery.
func SearchResultNames(result string) []string {
	var names []string
	if err := json.Unmarshal([]byte(result), &names); err != nil {
		return nil
	}
	if len(names) == 1 && strings.HasPrefix(names[0], searchErrorPrefix) {
		return nil
	}
	return names
}

// TruncateObservation caps a tool result at MaxObservationChars for storage
// in an agent's history. Parse the full result first; names past the cutoff
// are gone once truncated.
func TruncateObservation(s string) string {
	if len(s) <= MaxObservationChars {
		return s
	}
	return s[:MaxObservationChars] + "\n... (truncated)"
}

func renderJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("Unexpected error: %v", err)
	}
	return string(data)
}
