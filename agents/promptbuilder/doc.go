/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder provides typed prompt templates for the search agents.

Templates use {{name}} placeholders. Placeholders are bound one at a time,
each binding returning a new immutable Prompt, and Build fails if any
placeholder is still unbound. Literal strings may only be bound from
developer-provided constants; runtime data (user queries, tool output,
conversation history) must be bound through BindJSON or BindXML so that it
is marshaled rather than spliced into the template.

	prompt, _ := promptbuilder.NewPrompt(`Search GitHub for: {{query}}

	Prior iterations:
	{{history}}`)
	prompt, _ = prompt.BindXML("query", userQuery)
	prompt, _ = prompt.BindJSON("history", records)
	text, err := prompt.Build()
*/
package promptbuilder
