/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package textmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/retry"
	"github.com/2948841010/BUILD-MY-AGENT/agents/metrics"
	"github.com/2948841010/BUILD-MY-AGENT/agents/modelrouter"
)

// Completer generates a single text completion. The system prompt may be
// empty; the user prompt is required.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// settings holds the knobs shared by both provider implementations.
type settings struct {
	maxTokens    int64
	temperature  float64
	retryConfig  retry.Config
	genaiMetrics *metrics.GenAI
}

// Option configures a Completer.
type Option func(*settings) error

// WithMaxTokens caps the completion size.
func WithMaxTokens(tokens int64) Option {
	return func(s *settings) error {
		if tokens <= 0 {
			return errors.New("max tokens must be positive")
		}
		s.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(s *settings) error {
		if temp < 0 || temp > 2 {
			return fmt.Errorf("temperature must be between 0 and 2, got %f", temp)
		}
		s.temperature = temp
		return nil
	}
}

// WithRetryConfig overrides the backoff used for transient API errors.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *settings) error {
		s.retryConfig = cfg
		return nil
	}
}

// WithAttributeEnricher sets a custom attribute enricher for metrics.
// The default pulls mode, strategy, and iteration from the QueryContext
// carried by the request context.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(s *settings) error {
		s.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}

// New creates a Completer for the given model name.
func New(model string, creds modelrouter.Credentials, opts ...Option) (Completer, error) {
	if model == "" {
		return nil, errors.New("model name is required")
	}

	genaiMetrics := metrics.NewGenAI("buildmyagent.agents")
	genaiMetrics.SetAttributeEnricher(agenttrace.MetricAttributes)

	s := settings{
		maxTokens:    8192,
		temperature:  0.1,
		retryConfig:  retry.DefaultConfig(),
		genaiMetrics: genaiMetrics,
	}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if strings.HasPrefix(strings.ToLower(model), "claude-") {
		return newClaudeCompleter(model, creds, s), nil
	}
	return newChatCompleter(model, creds, s), nil
}
