/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package store persists repository summaries discovered during searches.
// Each query gets its own directory holding a single JSON file keyed by
// repository full name, so later lookups can answer from disk before
// touching the GitHub API.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const infoFileName = "repositories_info.json"

// Owner identifies who owns a repository.
type Owner struct {
	Login string `json:"login"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// RepoSummary is the summary persisted for each repository found by a search.
type RepoSummary struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	CloneURL      string   `json:"clone_url"`
	Language      string   `json:"language"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	Issues        int      `json:"issues"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	Owner         Owner    `json:"owner"`
	Topics        []string `json:"topics"`
	License       *string  `json:"license"`
	DefaultBranch string   `json:"default_branch"`
}

// Store reads and writes per-query repository summaries under a base directory.
type Store struct {
	dir string
}

// New creates a store rooted at the given directory.
// The directory is created lazily on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// SafeQuery converts a raw search query into a directory name.
// The query is lowercased and spaces and slashes become underscores.
func SafeQuery(query string) string {
	safe := strings.ToLower(query)
	safe = strings.ReplaceAll(safe, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	return safe
}

// Merge loads any previously saved summaries for the query, overlays the new
// ones (overwriting entries with the same full name), and writes the result
// back. It returns the path of the written file.
func (s *Store) Merge(query string, repos map[string]RepoSummary) (string, error) {
	dir := filepath.Join(s.dir, SafeQuery(query))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating query directory: %w", err)
	}

	path := filepath.Join(dir, infoFileName)

	existing, err := loadFile(path)
	if err != nil {
		// Corrupt or missing files start fresh, matching load-merge-save
		// semantics where a bad file is not fatal to a new search.
		existing = map[string]RepoSummary{}
	}

	for fullName, info := range repos {
		existing[fullName] = info
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding repository summaries: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Lookup scans all saved queries in sorted directory order and returns the
// first summary recorded for the given repository full name.
func (s *Store) Lookup(fullName string) (RepoSummary, bool) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return RepoSummary{}, false
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		repos, err := loadFile(filepath.Join(s.dir, name, infoFileName))
		if err != nil {
			continue
		}
		if info, ok := repos[fullName]; ok {
			return info, true
		}
	}
	return RepoSummary{}, false
}

func loadFile(path string) (map[string]RepoSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var repos map[string]RepoSummary
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return repos, nil
}
