// Package logging provides a minimal logging interface and adapters for agenthub.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the registry, discovery and pipeline runner use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library use)
//   - New for building a JSON or text slog handler from a Config
//
// Usage:
//
//	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: "json", Output: os.Stderr})
//	runner := pipeline.New(reg, func(o *pipeline.Options) { o.Logger = logger })
package logging
