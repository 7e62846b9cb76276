package testutil

import "github.com/hupe1980/agenthub/core"

// PayloadBuilder provides a fluent helper for constructing payloads.
// Example:
//
//	p := NewPayloadBuilder().Input("hello").Set("lang", "en").Build()
type PayloadBuilder struct {
	values core.Payload
}

// NewPayloadBuilder creates an empty builder.
func NewPayloadBuilder() *PayloadBuilder { return &PayloadBuilder{values: core.Payload{}} }

// Input sets the conventional "input" field (chainable).
func (b *PayloadBuilder) Input(s string) *PayloadBuilder { return b.Set("input", s) }

// Set stores an arbitrary field (chainable).
func (b *PayloadBuilder) Set(key string, v any) *PayloadBuilder { b.values[key] = v; return b }

// Build returns a copy of the accumulated payload.
func (b *PayloadBuilder) Build() core.Payload { return b.values.Clone() }
