/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package react runs a single-loop research agent over the GitHub tools.
// Each iteration asks the model for a Thought and an Action, executes the
// action against the toolset, and feeds the observation back. The loop
// ends when the model emits a final answer, the strategy layer says it has
// enough, or the iteration budget runs out.
package react
