/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package textmodel provides single-shot text completion for agents whose
// protocol lives in the response text itself rather than in structured
// tool calls. The ReAct loop parses Thought/Action lines out of plain
// model output, so it needs raw text instead of the extracted-JSON
// contract the executors implement. Model routing follows the same
// prefix rule as modelrouter: claude-* models use the Anthropic SDK,
// everything else speaks OpenAI-compatible Chat Completions.
package textmodel
