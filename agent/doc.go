// Package agent contains the built-in agent implementations and the discovery
// namespace that registers them.
//
//   - BaseAgent: configuration holder every concrete agent embeds; its own
//     Process reports core.ErrNotImplemented
//   - Echo: copies the payload and adds a "message" field (reference agent)
//   - Template: renders a text/template against the payload
//   - Set: merges static values into the payload
//   - Expression: evaluates a govaluate expression over payload fields
//   - Completion: sends a payload field to a language model
//
// Agents never mutate the payload they receive; each returns a fresh copy.
// Use Namespace with discovery.Discover to make them resolvable by name.
package agent
