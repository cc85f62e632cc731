/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package strategy decides how the orchestrator approaches a search query.
//
// It is a rule-based layer with three jobs: classify the query into a search
// strategy (broad search, comparison, trend analysis, deep analysis, or
// solution hunting), score the query's complexity to pick an agent mode
// (ReAct for quick lookups, Plan-and-Execute for multi-step work), and steer
// a running loop by suggesting the next action or a strategy switch based on
// progress counters.
package strategy
