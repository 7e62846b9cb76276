package core

import "context"

// Agent is the single-operation contract every pipeline step implements.
//
// Process receives the payload produced by the previous step and returns the
// payload handed to the next one. Implementations must not rely on the input
// being mutated by the caller; the returned value is the sole carrier of
// state. Calling Process repeatedly with the same payload and configuration
// must be safe, although agents backed by remote services may legitimately
// return different results.
type Agent interface {
	Process(ctx context.Context, payload Payload) (Payload, error)
}

// Factory builds an agent instance from its step configuration. A nil cfg is
// treated as an empty Config.
type Factory func(cfg Config) (Agent, error)

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(ctx context.Context, payload Payload) (Payload, error)

// Process implements Agent.
func (f AgentFunc) Process(ctx context.Context, payload Payload) (Payload, error) {
	return f(ctx, payload)
}
