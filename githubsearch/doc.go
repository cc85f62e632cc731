/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package githubsearch implements the GitHub repository search and inspection
// operations behind the MCP tools: repository search with local persistence,
// detailed repository records, language breakdowns, tree listings, and file
// content retrieval.
//
// Operations surface well-known failure modes as typed errors (NotFoundError,
// NotFileError, TooLargeError, and friends) whose messages are the exact text
// shown to tool callers; anything else is a wrapped transport or API error.
package githubsearch
