/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package params provides type-safe extraction of tool call arguments.
//
// LLM providers deliver tool arguments as map[string]any decoded from JSON,
// which means every number is a float64 and every missing key is a silent
// nil. Extract and ExtractOptional centralize the assertions and numeric
// conversions so tool handlers stay focused on their own logic:
//
//	fullName, err := params.Extract[string](args, "full_name")
//	maxSize, err := params.ExtractOptional(args, "max_size", 50000)
//
// Error and ErrorWithContext build the map-shaped error responses that get
// serialized back to the model as tool results.
package params
