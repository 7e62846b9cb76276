// Package core provides the foundational domain types shared by every other
// package in agenthub:
//
//   - Agent, the single-operation processing contract
//   - Payload, the mapping passed between pipeline steps
//   - Config, the immutable per-instance agent configuration
//   - Factory, the constructor recorded in a registry under a name
//   - Sentinel and typed errors (not registered, malformed spec, not implemented)
//
// The package holds no state and no implementations beyond small helpers, so
// registries, discovery and the pipeline runner can depend on it without
// creating cycles.
package core
