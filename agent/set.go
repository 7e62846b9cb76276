package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/agenthub/core"
)

// SetName is the registry name of the Set agent.
const SetName = "SetAgent"

// Set merges a static mapping into the payload, overwriting existing keys.
//
//	values:
//	  stage: draft
type Set struct {
	BaseAgent
	values map[string]any
}

// NewSet builds a Set agent.
func NewSet(cfg core.Config) (*Set, error) {
	base := NewBaseAgent(cfg)
	values, err := base.Config().Map("values")
	if err != nil {
		return nil, fmt.Errorf("set agent: %w", err)
	}
	return &Set{BaseAgent: base, values: values}, nil
}

// Process implements core.Agent.
func (s *Set) Process(_ context.Context, payload core.Payload) (core.Payload, error) {
	result := payload.Clone()
	for k, v := range s.values {
		result[k] = v
	}
	return result, nil
}
