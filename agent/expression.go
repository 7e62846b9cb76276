package agent

import (
	"context"
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/hupe1980/agenthub/core"
)

// ExpressionName is the registry name of the Expression agent.
const ExpressionName = "ExpressionAgent"

// Expression evaluates an arithmetic or boolean expression over the payload
// fields and stores the result. Configuration:
//
//	expression: "score * weight > 10"   # required, compiled at construction
//	output_key: result                 # optional
//
// Numbers evaluate as float64. Referencing a field the payload lacks fails
// the step.
type Expression struct {
	BaseAgent
	expr      *govaluate.EvaluableExpression
	outputKey string
}

// NewExpression builds an Expression agent.
func NewExpression(cfg core.Config) (*Expression, error) {
	base := NewBaseAgent(cfg)
	c := base.Config()

	text := c.String("expression", "")
	if text == "" {
		return nil, fmt.Errorf("expression agent: %q is required", "expression")
	}

	expr, err := govaluate.NewEvaluableExpression(text)
	if err != nil {
		return nil, fmt.Errorf("expression agent: compile %q: %w", text, err)
	}

	return &Expression{
		BaseAgent: base,
		expr:      expr,
		outputKey: c.String("output_key", "result"),
	}, nil
}

// Vars returns the payload fields the expression references.
func (e *Expression) Vars() []string { return e.expr.Vars() }

// Process implements core.Agent.
func (e *Expression) Process(_ context.Context, payload core.Payload) (core.Payload, error) {
	value, err := e.expr.Evaluate(payload)
	if err != nil {
		return nil, fmt.Errorf("expression agent: %w", err)
	}

	result := payload.Clone()
	result[e.outputKey] = value
	return result, nil
}
