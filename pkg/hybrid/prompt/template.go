// Package prompt provides text templates for the agent's model prompts
package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	hyberrors "github.com/duet-ai/duet/pkg/hybrid/errors"
)

// Template represents a parsed prompt template
type Template struct {
	Name     string
	template *template.Template
}

// New parses a template from its content
func New(name, content string) (*Template, error) {
	if name == "" {
		return nil, hyberrors.New("prompt", "new",
			fmt.Errorf("template name cannot be empty"))
	}

	parsed, err := template.New(name).Parse(content)
	if err != nil {
		return nil, hyberrors.New("prompt", "new",
			fmt.Errorf("failed to parse template %q: %w", name, err))
	}

	return &Template{
		Name:     name,
		template: parsed,
	}, nil
}

// MustNew parses a template and panics on error. For package-level templates
// whose content is fixed at compile time.
func MustNew(name, content string) *Template {
	t, err := New(name, content)
	if err != nil {
		panic(err)
	}
	return t
}

// Execute renders the template with the given data
func (t *Template) Execute(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.template.Execute(&buf, data); err != nil {
		return "", hyberrors.New("prompt", "execute",
			fmt.Errorf("failed to execute template %q: %w", t.Name, err))
	}
	return buf.String(), nil
}

// ArbiterData carries the values embedded into the arbiter meta-prompt
type ArbiterData struct {
	OriginalPrompt string
	LabelA         string
	LabelB         string
	OutputA        string
	OutputB        string
}

// Arbiter is the meta-prompt instructing the judge model to merge two
// candidate answers into one final answer. Both outputs are embedded
// verbatim, including any error sentinel text.
var Arbiter = MustNew("arbiter", `You are the **AI Arbiter**. Your sole mission is to critique and synthesize two distinct AI model outputs into a single, flawless, and superior final answer for the user's prompt.

**Original User Prompt:**
{{.OriginalPrompt}}

**Output A ({{.LabelA}}):**
---
{{.OutputA}}
---

**Output B ({{.LabelB}}):**
---
{{.OutputB}}
---

**INSTRUCTIONS:** Combine the strongest elements, correct any errors, and ensure the final answer is perfectly tailored to the original prompt. Generate only the polished, final response. Do NOT mention the names of the models or the critique process.`)
