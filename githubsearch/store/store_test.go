/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSafeQuery(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"machine learning", "machine_learning"},
		{"Python Web Framework", "python_web_framework"},
		{"owner/repo search", "owner_repo_search"},
		{"simple", "simple"},
	}
	for _, tt := range tests {
		if got := SafeQuery(tt.query); got != tt.want {
			t.Errorf("SafeQuery(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func sampleSummary(fullName string, stars int) RepoSummary {
	return RepoSummary{
		Name:          filepath.Base(fullName),
		FullName:      fullName,
		Description:   "a repository",
		URL:           "https://github.com/" + fullName,
		Language:      "Go",
		Stars:         stars,
		Owner:         Owner{Login: "octo", Type: "User", URL: "https://github.com/octo"},
		Topics:        []string{"go"},
		DefaultBranch: "main",
	}
}

func TestMergeAndLookup(t *testing.T) {
	s := New(t.TempDir())

	path, err := s.Merge("web framework", map[string]RepoSummary{
		"gin-gonic/gin": sampleSummary("gin-gonic/gin", 75000),
	})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if filepath.Base(path) != "repositories_info.json" {
		t.Errorf("Merge() path = %q", path)
	}
	if filepath.Base(filepath.Dir(path)) != "web_framework" {
		t.Errorf("Merge() query directory = %q", filepath.Dir(path))
	}

	got, ok := s.Lookup("gin-gonic/gin")
	if !ok {
		t.Fatal("Lookup() did not find saved repository")
	}
	if diff := cmp.Diff(sampleSummary("gin-gonic/gin", 75000), got); diff != "" {
		t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := s.Lookup("missing/repo"); ok {
		t.Error("Lookup(missing/repo) = true, want false")
	}
}

func TestMergeOverwritesExistingEntries(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Merge("web framework", map[string]RepoSummary{
		"gin-gonic/gin": sampleSummary("gin-gonic/gin", 100),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Merge("web framework", map[string]RepoSummary{
		"gin-gonic/gin": sampleSummary("gin-gonic/gin", 200),
		"labstack/echo": sampleSummary("labstack/echo", 30000),
	}); err != nil {
		t.Fatal(err)
	}

	got, ok := s.Lookup("gin-gonic/gin")
	if !ok {
		t.Fatal("Lookup() did not find repository")
	}
	if got.Stars != 200 {
		t.Errorf("Stars = %d, want 200 (newer entry wins)", got.Stars)
	}
	if _, ok := s.Lookup("labstack/echo"); !ok {
		t.Error("Lookup(labstack/echo) = false, want true (merged alongside)")
	}
}

func TestMergeRecoversFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	queryDir := filepath.Join(dir, "web_framework")
	if err := os.MkdirAll(queryDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(queryDir, "repositories_info.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Merge("web framework", map[string]RepoSummary{
		"gin-gonic/gin": sampleSummary("gin-gonic/gin", 100),
	}); err != nil {
		t.Fatalf("Merge() over corrupt file error = %v", err)
	}
	if _, ok := s.Lookup("gin-gonic/gin"); !ok {
		t.Error("Lookup() after recovery = false, want true")
	}
}

func TestLookupScansQueriesInSortedOrder(t *testing.T) {
	s := New(t.TempDir())

	older := sampleSummary("gin-gonic/gin", 1)
	newer := sampleSummary("gin-gonic/gin", 2)

	// "b_query" sorts after "a_query", so the entry under "a_query" wins.
	if _, err := s.Merge("b query", map[string]RepoSummary{"gin-gonic/gin": newer}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Merge("a query", map[string]RepoSummary{"gin-gonic/gin": older}); err != nil {
		t.Fatal(err)
	}

	got, ok := s.Lookup("gin-gonic/gin")
	if !ok {
		t.Fatal("Lookup() did not find repository")
	}
	if got.Stars != 1 {
		t.Errorf("Stars = %d, want 1 (first sorted directory wins)", got.Stars)
	}
}

func TestLookupEmptyStore(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, ok := s.Lookup("gin-gonic/gin"); ok {
		t.Error("Lookup() on missing base dir = true, want false")
	}
}
