/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package modelrouter

import (
	"context"
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/agenttrace"
	"github.com/2948841010/BUILD-MY-AGENT/agents/executor/chatexecutor"
	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/submitresult"
	"github.com/2948841010/BUILD-MY-AGENT/agents/toolcall/chattool"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// chatAgent implements Agent using an OpenAI-compatible Chat Completions API.
type chatAgent[Req promptbuilder.Bindable, Resp, CB any] struct {
	executor chatexecutor.Interface[Req, Resp]
	config   Config[Resp, CB]
}

func newChatAgent[Req promptbuilder.Bindable, Resp, CB any](
	_ context.Context,
	model string,
	creds Credentials,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(creds.ChatAPIKey),
	}
	if creds.ChatBaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(creds.ChatBaseURL))
	}
	client := openai.NewClient(clientOpts...)

	executorOpts := []chatexecutor.Option[Req, Resp]{
		chatexecutor.WithModel[Req, Resp](model),
		chatexecutor.WithSubmitResultProvider[Req, Resp](submitresult.ChatToolForResponse[Resp]),
		chatexecutor.WithAttributeEnricher[Req, Resp](agenttrace.MetricAttributes),
	}

	if config.MaxTokens > 0 {
		executorOpts = append(executorOpts, chatexecutor.WithMaxTokens[Req, Resp](config.MaxTokens))
	}
	if config.Temperature > 0 {
		executorOpts = append(executorOpts, chatexecutor.WithTemperature[Req, Resp](config.Temperature))
	}
	if config.SystemInstructions != nil {
		executorOpts = append(executorOpts, chatexecutor.WithSystemInstructions[Req, Resp](config.SystemInstructions))
	}

	executor, err := chatexecutor.New[Req, Resp](client, config.UserPrompt, executorOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating chat executor: %w", err)
	}

	return &chatAgent[Req, Resp, CB]{
		executor: executor,
		config:   config,
	}, nil
}

func (a *chatAgent[Req, Resp, CB]) Execute(ctx context.Context, request Req, callbacks CB) (Resp, error) {
	tools := chattool.Map(a.config.Tools.Tools(callbacks))
	return a.executor.Execute(ctx, request, tools)
}
