/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package chatexecutor

import (
	"errors"

	"github.com/openai/openai-go/v2"
)

// isRetryableChatError checks if an error is a retryable Chat Completions
// API error. Returns true for rate limit and transient server errors.
func isRetryableChatError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}
