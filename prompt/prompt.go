// Package prompt wraps text/template for prompt rendering.
package prompt

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Template renders a prompt from a map of named inputs.
type Template interface {
	Format(inputs map[string]any) (string, error)
}

type promptTemplate struct {
	tmpl *template.Template
}

// NewPromptTemplate parses content as a text/template. Optional blocks are
// guarded with {{if .key}} so absent inputs skip the block.
func NewPromptTemplate(content string) (Template, error) {
	tmpl, err := template.New("prompt").
		Option("missingkey=zero").
		Parse(content)
	if err != nil {
		return nil, errors.Wrap(err, "parse prompt template")
	}
	return &promptTemplate{tmpl: tmpl}, nil
}

func (p *promptTemplate) Format(inputs map[string]any) (string, error) {
	var sb strings.Builder
	if err := p.tmpl.Execute(&sb, inputs); err != nil {
		return "", errors.Wrap(err, "execute prompt template")
	}
	return sb.String(), nil
}
