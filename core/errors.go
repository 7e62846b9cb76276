package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is matched by errors returned when a name has no
	// registered factory.
	ErrNotRegistered = errors.New("agent not registered")

	// ErrMalformedSpec is matched by errors describing an invalid pipeline
	// specification.
	ErrMalformedSpec = errors.New("malformed pipeline spec")

	// ErrNotImplemented is returned when the base agent operation is invoked
	// without a concrete implementation.
	ErrNotImplemented = errors.New("agent does not implement Process")
)

// NotRegisteredError reports the name that failed to resolve.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("agent %q is not registered", e.Name)
}

// Is makes errors.Is(err, ErrNotRegistered) succeed.
func (e *NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }

// MalformedSpecError describes why a pipeline specification was rejected.
// Key is set for document-level problems, Position (1-based) for a step.
type MalformedSpecError struct {
	Key      string
	Position int
	Reason   string
}

func (e *MalformedSpecError) Error() string {
	switch {
	case e.Position > 0:
		return fmt.Sprintf("agent definition at position %d is malformed: %s", e.Position, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("workflow spec must contain a top-level %q list: %s", e.Key, e.Reason)
	default:
		return fmt.Sprintf("malformed workflow spec: %s", e.Reason)
	}
}

// Is makes errors.Is(err, ErrMalformedSpec) succeed.
func (e *MalformedSpecError) Is(target error) bool { return target == ErrMalformedSpec }
