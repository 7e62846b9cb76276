// Package registry maps agent names to the factories that construct them.
//
// A Registry is an explicit object handed to whatever needs it (discovery,
// the pipeline runner, tests) rather than ambient package state, so several
// independent registries can coexist in one process. Registration is
// last-write-wins; use Add when a duplicate name should be an error.
//
// All methods are safe for concurrent use. The expected usage is
// write-once at start-up followed by read-mostly lookups while pipelines run.
package registry
