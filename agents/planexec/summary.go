/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package planexec

import "github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"

var summaryPrompt = promptbuilder.MustPrompt(`Write the final answer to the user's question about GitHub repositories.

{{query}}

The research plan:
{{plan}}

{{observations}}

Cover every success criterion from the plan. Name the repositories
examined, compare them where relevant, and state a clear recommendation.
Base every claim on the observations; say so when a step failed and its
information is missing.`)

type xmlObservation struct {
	XMLName     struct{} `xml:"step"`
	Tool        string   `xml:"tool"`
	Purpose     string   `xml:"purpose,omitempty"`
	Observation string   `xml:"observation,omitempty"`
	Error       string   `xml:"error,omitempty"`
}

type xmlObservations struct {
	XMLName struct{} `xml:"observations"`
	Steps   []xmlObservation
}

func buildSummaryPrompt(query string, plan Plan, exec Execution) (string, error) {
	p, err := summaryPrompt.BindXML("query", struct {
		XMLName struct{} `xml:"user_query"`
		Content string   `xml:",chardata"`
	}{Content: query})
	if err != nil {
		return "", err
	}
	p, err = p.BindJSON("plan", plan)
	if err != nil {
		return "", err
	}

	steps := make([]xmlObservation, 0, len(exec.Steps))
	for _, s := range exec.Steps {
		steps = append(steps, xmlObservation{
			Tool:        s.Tool,
			Purpose:     s.Purpose,
			Observation: s.Observation,
			Error:       s.Error,
		})
	}
	p, err = p.BindXML("observations", xmlObservations{Steps: steps})
	if err != nil {
		return "", err
	}
	return p.Build()
}
