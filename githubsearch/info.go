/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubsearch

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/google/go-github/v84/github"
)

// DetailOwner identifies a repository owner in a Detail record.
type DetailOwner struct {
	Login     string `json:"login"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatar_url"`
}

// Detail is the expanded repository record returned when a repository is
// fetched from the API rather than the local store.
type Detail struct {
	Name          string      `json:"name"`
	FullName      string      `json:"full_name"`
	Description   string      `json:"description"`
	URL           string      `json:"url"`
	CloneURL      string      `json:"clone_url"`
	SSHURL        string      `json:"ssh_url"`
	Language      string      `json:"language"`
	Stars         int         `json:"stars"`
	Forks         int         `json:"forks"`
	Watchers      int         `json:"watchers"`
	Issues        int         `json:"issues"`
	Size          int         `json:"size"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
	PushedAt      string      `json:"pushed_at"`
	Owner         DetailOwner `json:"owner"`
	Topics        []string    `json:"topics"`
	License       *string     `json:"license"`
	DefaultBranch string      `json:"default_branch"`
	Archived      bool        `json:"archived"`
	Disabled      bool        `json:"disabled"`
	Private       bool        `json:"private"`
	ReadmePreview string      `json:"readme_preview"`
}

// RepositoryInfo returns what is known about a repository. A summary cached
// by an earlier search is returned as-is (a store.RepoSummary); otherwise the
// full record is fetched from the API and returned as a *Detail, including a
// short README preview when one is available.
func (s *Service) RepositoryInfo(ctx context.Context, fullName string) (any, error) {
	if summary, ok := s.store.Lookup(fullName); ok {
		return summary, nil
	}

	owner, repo, ok := splitFullName(fullName)
	if !ok {
		return nil, &NotFoundError{FullName: fullName}
	}

	repoData, err := retry.WithBackoff(ctx, s.retryCfg, "repository fetch", isRetryableGitHubError,
		func() (*github.Repository, error) {
			r, _, err := s.gh.Repositories.Get(ctx, owner, repo)
			return r, err
		})
	if err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{FullName: fullName}
		}
		return nil, fmt.Errorf("fetching repository %s: %w", fullName, err)
	}

	var license *string
	if l := repoData.GetLicense(); l != nil {
		name := l.GetName()
		license = &name
	}
	detail := &Detail{
		Name:        repoData.GetName(),
		FullName:    repoData.GetFullName(),
		Description: repoData.GetDescription(),
		URL:         repoData.GetHTMLURL(),
		CloneURL:    repoData.GetCloneURL(),
		SSHURL:      repoData.GetSSHURL(),
		Language:    repoData.GetLanguage(),
		Stars:       repoData.GetStargazersCount(),
		Forks:       repoData.GetForksCount(),
		Watchers:    repoData.GetWatchersCount(),
		Issues:      repoData.GetOpenIssuesCount(),
		Size:        repoData.GetSize(),
		CreatedAt:   repoData.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt:   repoData.GetUpdatedAt().Format(time.RFC3339),
		PushedAt:    repoData.GetPushedAt().Format(time.RFC3339),
		Owner: DetailOwner{
			Login:     repoData.GetOwner().GetLogin(),
			Type:      repoData.GetOwner().GetType(),
			URL:       repoData.GetOwner().GetHTMLURL(),
			AvatarURL: repoData.GetOwner().GetAvatarURL(),
		},
		Topics:        repoData.Topics,
		License:       license,
		DefaultBranch: repoData.GetDefaultBranch(),
		Archived:      repoData.GetArchived(),
		Disabled:      repoData.GetDisabled(),
		Private:       repoData.GetPrivate(),
		ReadmePreview: s.readmePreview(ctx, owner, repo),
	}
	return detail, nil
}

// readmePreview returns the opening of the repository README, truncated to
// 500 characters with a "..." suffix. Failures are non-fatal and yield an
// empty preview.
func (s *Service) readmePreview(ctx context.Context, owner, repo string) string {
	readme, _, err := s.gh.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return ""
	}
	content, err := readme.GetContent()
	if err != nil {
		return ""
	}

	runes := []rune(content)
	if len(runes) > 1000 {
		runes = runes[:1000]
	}
	if len(runes) > 500 {
		return string(runes[:500]) + "..."
	}
	return string(runes)
}

// LanguageStat describes one language's share of a repository.
type LanguageStat struct {
	Bytes      int     `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// LanguageBreakdown reports the languages used in a repository.
type LanguageBreakdown struct {
	Repository string                  `json:"repository"`
	TotalBytes int                     `json:"total_bytes"`
	Languages  map[string]LanguageStat `json:"languages"`
}

// Languages fetches the language byte counts for a repository and computes
// each language's percentage of the total, rounded to two decimals.
func (s *Service) Languages(ctx context.Context, fullName string) (*LanguageBreakdown, error) {
	owner, repo, ok := splitFullName(fullName)
	if !ok {
		return nil, &NotFoundError{FullName: fullName}
	}

	counts, err := retry.WithBackoff(ctx, s.retryCfg, "language fetch", isRetryableGitHubError,
		func() (map[string]int, error) {
			c, _, err := s.gh.Repositories.ListLanguages(ctx, owner, repo)
			return c, err
		})
	if err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{FullName: fullName}
		}
		return nil, fmt.Errorf("fetching languages for %s: %w", fullName, err)
	}

	total := 0
	for _, bytes := range counts {
		total += bytes
	}

	stats := make(map[string]LanguageStat, len(counts))
	for language, bytes := range counts {
		var pct float64
		if total > 0 {
			pct = math.Round(float64(bytes)/float64(total)*100*100) / 100
		}
		stats[language] = LanguageStat{Bytes: bytes, Percentage: pct}
	}

	return &LanguageBreakdown{
		Repository: fullName,
		TotalBytes: total,
		Languages:  stats,
	}, nil
}
