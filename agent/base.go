package agent

import (
	"context"

	"github.com/hupe1980/agenthub/core"
)

// BaseAgent bundles the configuration captured at construction time. Embed it
// in concrete agents and supply a Process method; calling Process on a bare
// BaseAgent fails with core.ErrNotImplemented.
type BaseAgent struct {
	config core.Config
}

// NewBaseAgent stores cfg, substituting an empty Config for nil.
func NewBaseAgent(cfg core.Config) BaseAgent {
	if cfg == nil {
		cfg = core.Config{}
	}
	return BaseAgent{config: cfg}
}

// Config returns the configuration the agent was built with.
func (b *BaseAgent) Config() core.Config { return b.config }

// Process implements core.Agent for the unspecialized base.
func (b *BaseAgent) Process(context.Context, core.Payload) (core.Payload, error) {
	return nil, core.ErrNotImplemented
}
