package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/agenthub/core"
)

const (
	// EchoName is the registry name of the Echo agent.
	EchoName = "EchoAgent"

	defaultEchoPrefix = "Echo:"
)

// Echo copies the incoming payload and sets "message" to
// "<prefix> <input>". Configuration:
//
//	prefix: "Echo:"   # optional
//
// Useful for quick sanity checks and as a template for new agents.
type Echo struct {
	BaseAgent
	prefix string
}

// NewEcho builds an Echo agent from cfg.
func NewEcho(cfg core.Config) *Echo {
	base := NewBaseAgent(cfg)
	return &Echo{
		BaseAgent: base,
		prefix:    base.Config().String("prefix", defaultEchoPrefix),
	}
}

// Process implements core.Agent.
func (e *Echo) Process(_ context.Context, payload core.Payload) (core.Payload, error) {
	result := payload.Clone()
	result["message"] = fmt.Sprintf("%s %s", e.prefix, payload.String("input", ""))
	return result, nil
}
