/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package planexec

import (
	"fmt"

	"github.com/2948841010/BUILD-MY-AGENT/agents/promptbuilder"
	"github.com/2948841010/BUILD-MY-AGENT/agents/strategy"
	"github.com/2948841010/BUILD-MY-AGENT/githubsearch/tools"
)

// Step is one planned tool invocation.
type Step struct {
	Tool    string         `json:"tool" jsonschema:"description=Name of the tool to invoke"`
	Args    map[string]any `json:"args" jsonschema:"description=Arguments for the tool"`
	Purpose string         `json:"purpose,omitempty" jsonschema:"description=What this step should find out"`
}

// Plan is the planner's structured output.
type Plan struct {
	Strategy        string   `json:"strategy" jsonschema:"description=Search strategy for this query"`
	Steps           []Step   `json:"steps" jsonschema:"description=Ordered tool invocations to execute"`
	SuccessCriteria []string `json:"success_criteria,omitempty" jsonschema:"description=What a good answer must cover"`
}

// Validate rejects plans the executor cannot run.
func (p Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan has no steps")
	}
	for i, step := range p.Steps {
		if !knownTools[step.Tool] {
			return fmt.Errorf("step %d uses unknown tool %q", i+1, step.Tool)
		}
	}
	return nil
}

var knownTools = map[string]bool{
	tools.NameSearch:    true,
	tools.NameInfo:      true,
	tools.NameLanguages: true,
	tools.NameTree:      true,
	tools.NameFile:      true,
}

var plannerPrompt = promptbuilder.MustPrompt(`Plan the research for a question about GitHub repositories.

{{query}}

{{strategy_hint}}

Available tools:
- search_repositories(query, max_results, sort, search_mode): search GitHub repositories
- get_repository_info(full_name): detailed metadata for one repository
- get_repository_languages(full_name): language byte counts and percentages
- get_repository_tree(full_name, path): list a directory in the repository
- get_repository_file_content(full_name, file_path, max_size): read one file

Produce a JSON plan:
{
  "strategy": "<search strategy>",
  "steps": [{"tool": "<tool name>", "args": {"<param>": "<value>"}, "purpose": "<why>"}],
  "success_criteria": ["<what the final answer must cover>"]
}

Order the steps so later steps can use what earlier ones discover. Search
before analyzing; analyze before reading files. Keep the plan minimal.`)

var plannerInstructions = promptbuilder.MustPrompt(`You are a research planner for a GitHub repository analysis agent.
You produce precise, minimal tool plans and nothing else.`)

// planRequest binds the query and strategy hint into the planner prompt.
type planRequest struct {
	Query    string
	Strategy strategy.Strategy
}

func (r *planRequest) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	prompt, err := prompt.BindXML("query", struct {
		XMLName struct{} `xml:"user_query"`
		Content string   `xml:",chardata"`
	}{Content: r.Query})
	if err != nil {
		return nil, err
	}
	return prompt.BindXML("strategy_hint", struct {
		XMLName  struct{} `xml:"strategy_hint"`
		Strategy string   `xml:"strategy"`
		Reason   string   `xml:"reason"`
	}{
		Strategy: string(r.Strategy),
		Reason:   "keyword heuristics over the query text",
	})
}
