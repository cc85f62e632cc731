/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package planexec runs the dual-stage research agent: a planner model
// produces a structured plan of tool steps, the steps execute sequentially
// against the toolset, and a second model turns the observations into the
// final answer. Planner and summarizer models are configured separately so
// a reasoning-heavy model can plan while a cheaper one writes the report.
package planexec
