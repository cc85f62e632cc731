/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolset

import (
	"context"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/params"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// Invoker executes a named GitHub tool and returns its text result.
// Errors are reserved for unknown tools, bad argument types, and transport
// failures; tool-level problems (missing repository, oversized file) come
// back as message text in the result, which is what the model should see.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) (string, error)
}

// Local invokes tools directly against a githubsearch.Service.
type Local struct {
	svc *githubsearch.Service
}

// NewLocal returns an Invoker backed by in-process service calls.
func NewLocal(svc *githubsearch.Service) *Local {
	return &Local{svc: svc}
}

// Invoke implements Invoker.
func (l *Local) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case tools.NameSearch:
		query, err := params.Extract[string](args, "query")
		if err != nil {
			return "", err
		}
		maxResults, err := params.ExtractOptional(args, "max_results", githubsearch.DefaultMaxResults)
		if err != nil {
			return "", err
		}
		sortBy, err := params.ExtractOptional(args, "sort", "stars")
		if err != nil {
			return "", err
		}
		mode, err := params.ExtractOptional(args, "search_mode", githubsearch.ModeSimple)
		if err != nil {
			return "", err
		}
		return tools.Search(ctx, l.svc, query, githubsearch.SearchOptions{
			MaxResults: maxResults,
			Sort:       sortBy,
			Mode:       mode,
		}), nil

	case tools.NameInfo:
		fullName, err := params.Extract[string](args, "full_name")
		if err != nil {
			return "", err
		}
		return tools.Info(ctx, l.svc, fullName), nil

	case tools.NameLanguages:
		fullName, err := params.Extract[string](args, "full_name")
		if err != nil {
			return "", err
		}
		return tools.Languages(ctx, l.svc, fullName), nil

	case tools.NameTree:
		fullName, err := params.Extract[string](args, "full_name")
		if err != nil {
			return "", err
		}
		path, err := params.ExtractOptional(args, "path", "")
		if err != nil {
			return "", err
		}
		return tools.Tree(ctx, l.svc, fullName, path), nil

	case tools.NameFile:
		fullName, err := params.Extract[string](args, "full_name")
		if err != nil {
			return "", err
		}
		filePath, err := params.Extract[string](args, "file_path")
		if err != nil {
			return "", err
		}
		maxSize, err := params.ExtractOptional(args, "max_size", githubsearch.DefaultMaxFileSize)
		if err != nil {
			return "", err
		}
		return tools.File(ctx, l.svc, fullName, filePath, maxSize), nil

	default:
		return "", fmt.Errorf("unknown tool: %q", name)
	}
}
