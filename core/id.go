package core

import "github.com/google/uuid"

// NewID returns a random UUID string used to correlate a pipeline run across
// log lines and callbacks.
func NewID() string { return uuid.NewString() }
