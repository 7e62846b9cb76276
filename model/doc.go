// Package model defines the provider-agnostic abstraction used by agents that
// delegate work to a language model.
//
// Core goals:
//   - One synchronous Generate call matching the pipeline's step-at-a-time model
//   - Request/response shapes minimal and transport independent
//   - Lightweight mocking for tests (MockModel)
//
// Providers (openai, anthropic) implement the Model interface in their own
// subpackages so the agent package stays decoupled from vendor SDKs.
package model
