/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package react

import (
	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
)

const systemInstructions = `You are a GitHub repository research agent. You investigate repositories
with the tools provided and answer the user's question with concrete,
sourced findings. Think step by step and never invent repository data.`

const toolCatalog = `Available tools:
- search_repositories(query, max_results=5, sort="stars", search_mode="simple"): search GitHub repositories
- get_repository_info(full_name): detailed metadata for one repository
- get_repository_languages(full_name): language byte counts and percentages
- get_repository_tree(full_name, path=""): list a directory in the repository
- get_repository_file_content(full_name, file_path, max_size=50000): read one file`

var iterationPrompt = promptbuilder.MustPrompt(`Research the user's question about GitHub repositories.

{{query}}

` + toolCatalog + `

{{progress}}

{{history}}

{{suggestion}}

Respond with exactly one "Thought:" line explaining your reasoning, followed by
either one "Action:" line invoking a tool, for example:

Action: search_repositories("go web framework", max_results=10)

or, when you have enough information, a final report:

Final Answer: <your complete answer>`)

var conclusionPrompt = promptbuilder.MustPrompt(`Write the final answer to the user's question about GitHub repositories.

{{query}}

{{history}}

Summarize what the research found. Name the repositories examined, compare
them where relevant, and state a clear recommendation. Base every claim on
the observations above.`)

type xmlQuery struct {
	XMLName struct{} `xml:"user_query"`
	Content string   `xml:",chardata"`
}

type xmlProgress struct {
	XMLName       struct{} `xml:"progress"`
	Strategy      string   `xml:"strategy"`
	Iteration     int      `xml:"iteration"`
	MaxIterations int      `xml:"max_iterations"`
	Repositories  []string `xml:"repositories>repo"`
}

type xmlStep struct {
	XMLName     struct{} `xml:"step"`
	Thought     string   `xml:"thought"`
	Action      string   `xml:"action,omitempty"`
	Observation string   `xml:"observation,omitempty"`
}

type xmlHistory struct {
	XMLName struct{} `xml:"history"`
	Steps   []xmlStep
}

type xmlSuggestion struct {
	XMLName    struct{} `xml:"suggested_next_action"`
	Priority   string   `xml:"priority"`
	Reason     string   `xml:"reason"`
	TargetRepo string   `xml:"target_repo,omitempty"`
}

func historyXML(records []Record) xmlHistory {
	steps := make([]xmlStep, 0, len(records))
	for _, r := range records {
		steps = append(steps, xmlStep{
			Thought:     r.Thought,
			Action:      r.Action,
			Observation: r.Observation,
		})
	}
	return xmlHistory{Steps: steps}
}

func buildIterationPrompt(st *State, sug strategy.Suggestion, maxIterations int) (string, error) {
	p, err := iterationPrompt.BindXML("query", xmlQuery{Content: st.Query})
	if err != nil {
		return "", err
	}
	p, err = p.BindXML("progress", xmlProgress{
		Strategy:      string(st.Strategy),
		Iteration:     st.Iteration,
		MaxIterations: maxIterations,
		Repositories:  st.Repos(),
	})
	if err != nil {
		return "", err
	}
	p, err = p.BindXML("history", historyXML(st.History))
	if err != nil {
		return "", err
	}
	p, err = p.BindXML("suggestion", xmlSuggestion{
		Priority:   sug.Priority,
		Reason:     sug.Reason,
		TargetRepo: sug.TargetRepo,
	})
	if err != nil {
		return "", err
	}
	return p.Build()
}

func buildConclusionPrompt(st *State) (string, error) {
	p, err := conclusionPrompt.BindXML("query", xmlQuery{Content: st.Query})
	if err != nil {
		return "", err
	}
	p, err = p.BindXML("history", historyXML(st.History))
	if err != nil {
		return "", err
	}
	return p.Build()
}
