/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/store"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

const (
	// DefaultMaxResults is the search result cap used when the caller does
	// not specify one.
	DefaultMaxResults = 5

	// DefaultMaxFileSize is the file content size limit in bytes used when
	// the caller does not specify one.
	DefaultMaxFileSize = 50000

	// ModeSimple passes the query to GitHub search unchanged.
	ModeSimple = "simple"

	// ModeAdvanced translates friendly boolean operators into GitHub
	// search syntax before querying.
	ModeAdvanced = "advanced"
)

// Service answers repository queries against the GitHub API, persisting
// search hits into a local store so later lookups can skip the network.
type Service struct {
	gh       *github.Client
	store    *store.Store
	retryCfg retry.Config
}

// Option configures a Service.
type Option func(*Service)

// WithRetryConfig overrides the backoff configuration used for API calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *Service) {
		s.retryCfg = cfg
	}
}

// New creates a Service backed by the given GitHub client and store.
func New(gh *github.Client, st *store.Store, opts ...Option) *Service {
	s := &Service{
		gh:       gh,
		store:    st,
		retryCfg: retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchOptions adjusts a repository search.
type SearchOptions struct {
	// MaxResults caps how many repositories are returned, at most 100.
	// Zero means DefaultMaxResults.
	MaxResults int

	// Sort is one of "stars", "forks", or "updated". Empty means "stars".
	Sort string

	// Mode is ModeSimple or ModeAdvanced. Anything else is treated as
	// simple.
	Mode string
}

// SearchRepositories searches GitHub and returns the full names of the
// matching repositories, most relevant first. Every hit is also persisted
// into the per-query store so RepositoryInfo can answer from disk later.
func (s *Service) SearchRepositories(ctx context.Context, query string, opts SearchOptions) ([]string, error) {
	log := clog.FromContext(ctx)

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	sortBy := opts.Sort
	if sortBy == "" {
		sortBy = "stars"
	}

	q := query
	if opts.Mode == ModeAdvanced {
		// GitHub search ANDs bare terms, so the explicit operator just
		// becomes a space. OR and NOT are already native syntax.
		q = strings.ReplaceAll(q, " AND ", " ")
	}

	result, err := retry.WithBackoff(ctx, s.retryCfg, "repository search", isRetryableGitHubError,
		func() (*github.RepositoriesSearchResult, error) {
			res, _, err := s.gh.Search.Repositories(ctx, q, &github.SearchOptions{
				Sort:        sortBy,
				Order:       "desc",
				ListOptions: github.ListOptions{PerPage: min(maxResults, 100)},
			})
			return res, err
		})
	if err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}

	names := make([]string, 0, len(result.Repositories))
	summaries := make(map[string]store.RepoSummary, len(result.Repositories))
	for _, repo := range result.Repositories {
		names = append(names, repo.GetFullName())
		summaries[repo.GetFullName()] = summarize(repo)
	}

	path, err := s.store.Merge(query, summaries)
	if err != nil {
		return nil, fmt.Errorf("saving search results: %w", err)
	}
	log.With("path", path).Infof("Found %d repositories for query: %s", len(names), query)

	return names, nil
}

// summarize flattens an API repository record into the persisted summary.
func summarize(repo *github.Repository) store.RepoSummary {
	var license *string
	if l := repo.GetLicense(); l != nil {
		name := l.GetName()
		license = &name
	}
	return store.RepoSummary{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		CloneURL:    repo.GetCloneURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Issues:      repo.GetOpenIssuesCount(),
		CreatedAt:   repo.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt:   repo.GetUpdatedAt().Format(time.RFC3339),
		Owner: store.Owner{
			Login: repo.GetOwner().GetLogin(),
			Type:  repo.GetOwner().GetType(),
			URL:   repo.GetOwner().GetHTMLURL(),
		},
		Topics:        repo.Topics,
		License:       license,
		DefaultBranch: repo.GetDefaultBranch(),
	}
}

// splitFullName splits "owner/repo" into its halves.
func splitFullName(fullName string) (owner, repo string, ok bool) {
	owner, repo, ok = strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}
