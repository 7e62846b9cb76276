package core

import "fmt"

// Payload is the structured data flowing between pipeline steps.
type Payload map[string]any

// Clone returns a shallow copy. A nil payload clones to an empty, non-nil one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Get returns the raw value stored under key.
func (p Payload) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// String returns the value under key rendered as a string, or def when the
// key is absent or nil. Non-string values are formatted with %v.
func (p Payload) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
