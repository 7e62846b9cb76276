package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/internal/util"
)

// TemplateName is the registry name of the Template agent.
const TemplateName = "TemplateAgent"

// Template renders a Go text/template against the payload and stores the
// result under output_key. Configuration:
//
//	template: "Hello {{.name}}"   # required
//	output_key: message            # optional
//	strict: false                  # optional, missing keys fail when true
type Template struct {
	BaseAgent
	tmpl      *util.Template
	outputKey string
}

// NewTemplate builds a Template agent, validating its configuration.
func NewTemplate(cfg core.Config) (*Template, error) {
	base := NewBaseAgent(cfg)
	c := base.Config()

	text := c.String("template", "")
	if text == "" {
		return nil, fmt.Errorf("template agent: %q is required", "template")
	}

	strict, err := c.Bool("strict", false)
	if err != nil {
		return nil, fmt.Errorf("template agent: %w", err)
	}

	tmpl, err := util.ParseTemplate(text, strict)
	if err != nil {
		return nil, fmt.Errorf("template agent: %w", err)
	}

	return &Template{
		BaseAgent: base,
		tmpl:      tmpl,
		outputKey: c.String("output_key", "message"),
	}, nil
}

// Process implements core.Agent.
func (t *Template) Process(_ context.Context, payload core.Payload) (core.Payload, error) {
	out, err := t.tmpl.Render(payload)
	if err != nil {
		return nil, fmt.Errorf("template agent: %w", err)
	}

	result := payload.Clone()
	result[t.outputKey] = out
	return result, nil
}
