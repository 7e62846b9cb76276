package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/logging"
	"github.com/hupe1980/agenthub/registry"
)

// Options configures a Runner.
type Options struct {
	// Logger receives per-run and per-step lines tagged with run_id.
	Logger logging.Logger
	// Callbacks are registered on the runner's CallbackManager.
	Callbacks []Callback
}

// Runner executes workflow specifications against a registry.
type Runner struct {
	registry  *registry.Registry
	logger    logging.Logger
	callbacks *CallbackManager
}

// New creates a Runner resolving agents from reg.
func New(reg *registry.Registry, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		registry:  reg,
		logger:    logging.OrNoOp(opts.Logger),
		callbacks: NewCallbackManager(opts.Callbacks...),
	}
}

// Run loads a specification from r and executes it.
func (rn *Runner) Run(ctx context.Context, r io.Reader, initial core.Payload) (core.Payload, error) {
	spec, err := Load(r)
	if err != nil {
		return nil, err
	}

	return rn.Execute(ctx, spec, initial)
}

// RunFile loads the workflow specification at path and executes it.
func (rn *Runner) RunFile(ctx context.Context, path string, initial core.Payload) (core.Payload, error) {
	spec, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return rn.Execute(ctx, spec, initial)
}

// Execute folds initial through every step of spec. A nil initial payload
// is treated as empty. Agent and resolution errors are returned unchanged
// and no payload is returned on failure.
func (rn *Runner) Execute(ctx context.Context, spec *Spec, initial core.Payload) (core.Payload, error) {
	if rn.registry == nil {
		return nil, fmt.Errorf("pipeline: nil registry")
	}

	if spec == nil {
		return nil, &core.MalformedSpecError{Key: agentsKey, Reason: "spec is nil"}
	}

	runID := core.NewID()
	logger := rn.logger

	current := initial
	if current == nil {
		current = core.Payload{}
	}

	logger.Info("pipeline started", "run_id", runID, "steps", len(spec.Agents))
	done := logging.StartTimer(logger, "pipeline.run", "run_id", runID)

	for i, step := range spec.Agents {
		position := i + 1

		next, err := rn.step(ctx, runID, position, step, current)
		if err != nil {
			logger.Error("pipeline failed", "run_id", runID, "position", position, "agent", step.Name, "error", err)

			cbErr := rn.callbacks.ExecuteCallbacks(ctx, CallbackOnError, &CallbackContext{
				RunID:    runID,
				Position: position,
				Step:     step,
				Payload:  current,
				Err:      err,
			})
			if cbErr != nil {
				logger.Warn("on_error callback failed", "run_id", runID, "error", cbErr)
			}

			return nil, err
		}

		current = next
	}

	done()
	logger.Info("pipeline finished", "run_id", runID)

	return current, nil
}

func (rn *Runner) step(ctx context.Context, runID string, position int, step Step, payload core.Payload) (core.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent, err := rn.registry.New(step.Name, step.Config)
	if err != nil {
		return nil, err
	}

	cbCtx := &CallbackContext{
		RunID:    runID,
		Position: position,
		Step:     step,
		Payload:  payload,
	}

	if err := rn.callbacks.ExecuteCallbacks(ctx, CallbackBeforeStep, cbCtx); err != nil {
		return nil, fmt.Errorf("before_step callback at position %d: %w", position, err)
	}

	rn.logger.Debug("step started", "run_id", runID, "position", position, "agent", step.Name)

	out, err := agent.Process(ctx, payload)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = core.Payload{}
	}

	cbCtx.Payload = out
	if err := rn.callbacks.ExecuteCallbacks(ctx, CallbackAfterStep, cbCtx); err != nil {
		return nil, fmt.Errorf("after_step callback at position %d: %w", position, err)
	}

	rn.logger.Debug("step finished", "run_id", runID, "position", position, "agent", step.Name)

	return out, nil
}
