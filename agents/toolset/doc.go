/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package toolset bridges the GitHub tools to the agent loops.
//
// An Invoker executes a named tool with loosely-typed arguments and returns
// the tool's text result. Two implementations exist: Local calls the
// githubsearch service in-process, and MCP calls a remote tool server over
// the Model Context Protocol. Provider wraps an Invoker as provider-neutral
// tool definitions for the LLM executors.
package toolset
