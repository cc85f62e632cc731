/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubsearch

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v84/github"
)

// NotFoundError reports a repository that does not exist on GitHub.
// Its message is the exact text surfaced to tool callers.
type NotFoundError struct {
	FullName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Repository '%s' not found on GitHub.", e.FullName)
}

// PathNotFoundError reports a missing path within a repository tree.
type PathNotFoundError struct {
	FullName string
	Path     string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("Repository '%s' or path '%s' not found on GitHub.", e.FullName, e.Path)
}

// FileNotFoundError reports a missing file within a repository.
type FileNotFoundError struct {
	FullName string
	FilePath string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("Repository '%s' or file '%s' not found on GitHub.", e.FullName, e.FilePath)
}

// NotFileError reports a content path that resolved to something other than
// a regular file, such as a directory or submodule.
type NotFileError struct {
	FilePath string
	Type     string
}

func (e *NotFileError) Error() string {
	return fmt.Sprintf("'%s' is not a file, it's a %s.", e.FilePath, e.Type)
}

// TooLargeError reports a file exceeding the caller's size limit.
type TooLargeError struct {
	FilePath string
	Size     int
	MaxSize  int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("File '%s' is too large (%d bytes). Maximum allowed size is %d bytes. Use get_repository_tree to browse directories instead.", e.FilePath, e.Size, e.MaxSize)
}

// isNotFound reports whether err is a GitHub API 404 response.
func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == 404
}

// isRetryableGitHubError reports whether an API error is worth retrying.
// Rate limits and server-side failures qualify, client errors do not.
func isRetryableGitHubError(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode >= 500
	}
	return false
}
