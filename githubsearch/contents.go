/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubsearch

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/google/go-github/v84/github"
)

// TreeEntry is one item in a directory listing. Size is nil for anything
// that is not a regular file.
type TreeEntry struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Size        *int    `json:"size"`
	Path        string  `json:"path"`
	DownloadURL *string `json:"download_url"`
	HTMLURL     string  `json:"html_url"`
}

// DirectoryListing describes a directory within a repository.
type DirectoryListing struct {
	Repository string      `json:"repository"`
	Path       string      `json:"path"`
	Type       string      `json:"type"`
	Items      []TreeEntry `json:"items"`
	TotalItems int         `json:"total_items"`
}

// FileStat describes a single file found where a directory was requested.
type FileStat struct {
	Repository  string  `json:"repository"`
	Path        string  `json:"path"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Size        int     `json:"size"`
	DownloadURL *string `json:"download_url"`
	HTMLURL     string  `json:"html_url"`
}

// Tree lists the contents of a repository path. Directories come back as a
// *DirectoryListing; a path that resolves to a file comes back as a
// *FileStat. The root path is the empty string.
func (s *Service) Tree(ctx context.Context, fullName, path string) (any, error) {
	owner, repo, ok := splitFullName(fullName)
	if !ok {
		return nil, &PathNotFoundError{FullName: fullName, Path: path}
	}

	contents, err := s.getContents(ctx, owner, repo, path)
	if err != nil {
		if isNotFound(err) {
			return nil, &PathNotFoundError{FullName: fullName, Path: path}
		}
		return nil, fmt.Errorf("fetching contents of %s at %q: %w", fullName, path, err)
	}

	if contents.dir != nil {
		items := make([]TreeEntry, 0, len(contents.dir))
		for _, item := range contents.dir {
			entry := TreeEntry{
				Name:        item.GetName(),
				Type:        item.GetType(),
				Path:        item.GetPath(),
				DownloadURL: item.DownloadURL,
				HTMLURL:     item.GetHTMLURL(),
			}
			if item.GetType() == "file" {
				size := item.GetSize()
				entry.Size = &size
			}
			items = append(items, entry)
		}
		displayPath := path
		if displayPath == "" {
			displayPath = "/"
		}
		return &DirectoryListing{
			Repository: fullName,
			Path:       displayPath,
			Type:       "directory",
			Items:      items,
			TotalItems: len(items),
		}, nil
	}

	file := contents.file
	return &FileStat{
		Repository:  fullName,
		Path:        path,
		Type:        "file",
		Name:        file.GetName(),
		Size:        file.GetSize(),
		DownloadURL: file.DownloadURL,
		HTMLURL:     file.GetHTMLURL(),
	}, nil
}

// FileContent is the decoded content of a repository file plus its metadata.
type FileContent struct {
	Repository  string  `json:"repository"`
	FilePath    string  `json:"file_path"`
	Name        string  `json:"name"`
	Size        int     `json:"size"`
	Encoding    string  `json:"encoding"`
	Content     string  `json:"content"`
	SHA         string  `json:"sha"`
	HTMLURL     string  `json:"html_url"`
	DownloadURL *string `json:"download_url"`
}

// File fetches and decodes a single file. Files larger than maxSize bytes
// are rejected with a TooLargeError; maxSize <= 0 means DefaultMaxFileSize.
// Content that does not decode as UTF-8 is replaced with a binary file
// placeholder.
func (s *Service) File(ctx context.Context, fullName, filePath string, maxSize int) (*FileContent, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	owner, repo, ok := splitFullName(fullName)
	if !ok {
		return nil, &FileNotFoundError{FullName: fullName, FilePath: filePath}
	}

	contents, err := s.getContents(ctx, owner, repo, filePath)
	if err != nil {
		if isNotFound(err) {
			return nil, &FileNotFoundError{FullName: fullName, FilePath: filePath}
		}
		return nil, fmt.Errorf("fetching file %s from %s: %w", filePath, fullName, err)
	}

	if contents.dir != nil {
		return nil, &NotFileError{FilePath: filePath, Type: "dir"}
	}
	file := contents.file
	if file.GetType() != "file" {
		return nil, &NotFileError{FilePath: filePath, Type: file.GetType()}
	}

	size := file.GetSize()
	if size > maxSize {
		return nil, &TooLargeError{FilePath: filePath, Size: size, MaxSize: maxSize}
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding file %s from %s: %w", filePath, fullName, err)
	}
	if !utf8.ValidString(content) {
		content = fmt.Sprintf("[Binary file - %d bytes]", size)
	}

	encoding := file.GetEncoding()
	if encoding == "" {
		encoding = "unknown"
	}

	return &FileContent{
		Repository:  fullName,
		FilePath:    filePath,
		Name:        file.GetName(),
		Size:        size,
		Encoding:    encoding,
		Content:     content,
		SHA:         file.GetSHA(),
		HTMLURL:     file.GetHTMLURL(),
		DownloadURL: file.DownloadURL,
	}, nil
}

// repoContents holds the two shapes the contents API can return.
type repoContents struct {
	file *github.RepositoryContent
	dir  []*github.RepositoryContent
}

func (s *Service) getContents(ctx context.Context, owner, repo, path string) (repoContents, error) {
	return retry.WithBackoff(ctx, s.retryCfg, "contents fetch", isRetryableGitHubError,
		func() (repoContents, error) {
			file, dir, _, err := s.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
			return repoContents{file: file, dir: dir}, err
		})
}
