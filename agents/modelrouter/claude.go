/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package modelrouter

import (
	"context"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/claudeexecutor"
	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/submitresult"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/claudetool"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeAgent implements Agent using Claude via the Anthropic API.
type claudeAgent[Req promptbuilder.Bindable, Resp, CB any] struct {
	executor claudeexecutor.Interface[Req, Resp]
	config   Config[Resp, CB]
}

func newClaudeAgent[Req promptbuilder.Bindable, Resp, CB any](
	_ context.Context,
	model string,
	creds Credentials,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	client := anthropic.NewClient(
		option.WithAPIKey(creds.AnthropicAPIKey),
	)

	executorOpts := []claudeexecutor.Option[Req, Resp]{
		claudeexecutor.WithModel[Req, Resp](model),
		claudeexecutor.WithSubmitResultProvider[Req, Resp](submitresult.ClaudeToolForResponse[Resp]),
		claudeexecutor.WithAttributeEnricher[Req, Resp](agenttrace.MetricAttributes),
	}

	if config.MaxTokens > 0 {
		executorOpts = append(executorOpts, claudeexecutor.WithMaxTokens[Req, Resp](config.MaxTokens))
	}
	if config.Temperature > 0 {
		executorOpts = append(executorOpts, claudeexecutor.WithTemperature[Req, Resp](config.Temperature))
	}
	if config.SystemInstructions != nil {
		executorOpts = append(executorOpts, claudeexecutor.WithSystemInstructions[Req, Resp](config.SystemInstructions))
	}

	executor, err := claudeexecutor.New[Req, Resp](client, config.UserPrompt, executorOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating Claude executor: %w", err)
	}

	return &claudeAgent[Req, Resp, CB]{
		executor: executor,
		config:   config,
	}, nil
}

func (a *claudeAgent[Req, Resp, CB]) Execute(ctx context.Context, request Req, callbacks CB) (Resp, error) {
	tools := claudetool.Map(a.config.Tools.Tools(callbacks))
	return a.executor.Execute(ctx, request, tools)
}
