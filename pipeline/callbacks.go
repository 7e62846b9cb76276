package pipeline

import (
	"context"

	"github.com/hupe1980/agenthub/core"
)

// CallbackType identifies a lifecycle point of a pipeline run.
type CallbackType string

const (
	// CallbackBeforeStep runs after a step's agent is constructed and before
	// it processes the payload.
	CallbackBeforeStep CallbackType = "before_step"

	// CallbackAfterStep runs with the payload a step produced.
	CallbackAfterStep CallbackType = "after_step"

	// CallbackOnError runs once when the run fails. Its own errors are
	// logged and never replace the run error.
	CallbackOnError CallbackType = "on_error"
)

// CallbackContext describes the step a callback fires for.
type CallbackContext struct {
	RunID    string
	Position int // 1-based
	Step     Step
	Payload  core.Payload
	Err      error // set for CallbackOnError only
	Type     CallbackType
}

// Callback hooks into a pipeline run. Returning an error from a
// before_step or after_step callback aborts the run.
type Callback interface {
	Type() CallbackType
	Execute(ctx context.Context, cbCtx *CallbackContext) error
}

// FunctionCallback wraps a function as a Callback.
type FunctionCallback struct {
	callbackType CallbackType
	fn           func(ctx context.Context, cbCtx *CallbackContext) error
}

// NewFunctionCallback creates a function-based callback.
//
//	cb := pipeline.NewFunctionCallback(pipeline.CallbackAfterStep,
//	    func(ctx context.Context, c *pipeline.CallbackContext) error {
//	        fmt.Println(c.Position, c.Step.Name)
//	        return nil
//	    })
func NewFunctionCallback(callbackType CallbackType, fn func(ctx context.Context, cbCtx *CallbackContext) error) *FunctionCallback {
	return &FunctionCallback{callbackType: callbackType, fn: fn}
}

// Type returns the callback type this function handles.
func (c *FunctionCallback) Type() CallbackType { return c.callbackType }

// Execute calls the wrapped function.
func (c *FunctionCallback) Execute(ctx context.Context, cbCtx *CallbackContext) error {
	return c.fn(ctx, cbCtx)
}

// CallbackManager routes callbacks by type and runs them in registration
// order. Register everything before the first run; execution is then safe
// for concurrent use.
type CallbackManager struct {
	callbacks map[CallbackType][]Callback
}

// NewCallbackManager creates an empty manager.
func NewCallbackManager(callbacks ...Callback) *CallbackManager {
	cm := &CallbackManager{callbacks: make(map[CallbackType][]Callback)}
	for _, cb := range callbacks {
		cm.RegisterCallback(cb)
	}

	return cm
}

// RegisterCallback adds a callback. Nil callbacks are ignored.
func (cm *CallbackManager) RegisterCallback(cb Callback) {
	if cb == nil {
		return
	}

	cm.callbacks[cb.Type()] = append(cm.callbacks[cb.Type()], cb)
}

// ExecuteCallbacks runs every callback of the given type and stops at the
// first error.
func (cm *CallbackManager) ExecuteCallbacks(ctx context.Context, callbackType CallbackType, cbCtx *CallbackContext) error {
	if cm == nil {
		return nil
	}

	cbCtx.Type = callbackType

	for _, cb := range cm.callbacks[callbackType] {
		if err := cb.Execute(ctx, cbCtx); err != nil {
			return err
		}
	}

	return nil
}
