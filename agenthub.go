// Package agenthub provides a high-level façade over the registry, discovery
// and pipeline packages. Most applications interact with this package by:
//  1. Creating a Hub via New() (built-in agents are discovered automatically)
//  2. Registering custom agents or extra discovery namespaces
//  3. Running workflow specifications with Run, RunFile or Execute
//
// All defaults are safe for local development and testing.
package agenthub

import (
	"context"
	"io"

	"github.com/hupe1980/agenthub/agent"
	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/discovery"
	"github.com/hupe1980/agenthub/logging"
	"github.com/hupe1980/agenthub/pipeline"
	"github.com/hupe1980/agenthub/registry"
)

// Options configures the Hub instance.
type Options struct {
	// StrictRegistry makes duplicate names fail discovery instead of
	// replacing the earlier factory.
	StrictRegistry bool

	// Providers backs the built-in Completion agent (defaults to
	// agent.DefaultProviders()).
	Providers map[string]agent.ModelProvider

	// Namespaces are discovered after the built-in agent namespace.
	Namespaces []*discovery.Namespace

	// Callbacks are attached to every run.
	Callbacks []pipeline.Callback

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Hub aggregates a populated registry and the pipeline runner using it.
type Hub struct {
	registry *registry.Registry
	runner   *pipeline.Runner
}

// New creates a Hub and runs discovery over the built-in agents plus any
// configured namespaces.
func New(optFns ...func(o *Options)) (*Hub, error) {
	opts := Options{
		Providers: agent.DefaultProviders(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	logger := logging.OrNoOp(opts.Logger)

	reg := registry.New(func(o *registry.Options) {
		o.Logger = logger
	})

	register := agent.Overwrite
	if opts.StrictRegistry {
		register = agent.Strict
	}

	root := &discovery.Namespace{
		Children: append([]*discovery.Namespace{
			agent.Namespace(func(o *agent.NamespaceOptions) {
				o.Register = register
				o.Providers = opts.Providers
			}),
		}, opts.Namespaces...),
	}

	if err := discovery.Discover(reg, root, func(o *discovery.Options) {
		o.Logger = logger
	}); err != nil {
		return nil, err
	}

	runner := pipeline.New(reg, func(o *pipeline.Options) {
		o.Logger = logger
		o.Callbacks = opts.Callbacks
	})

	return &Hub{registry: reg, runner: runner}, nil
}

// Registry exposes the underlying registry for direct registration.
func (h *Hub) Registry() *registry.Registry { return h.registry }

// Register adds or replaces a factory under name.
func (h *Hub) Register(name string, f core.Factory) { h.registry.Register(name, f) }

// Agents returns the registered names in sorted order.
func (h *Hub) Agents() []string { return h.registry.Names() }

// Run loads a workflow specification from r and executes it.
func (h *Hub) Run(ctx context.Context, r io.Reader, initial core.Payload) (core.Payload, error) {
	return h.runner.Run(ctx, r, initial)
}

// RunFile loads the workflow specification at path and executes it.
func (h *Hub) RunFile(ctx context.Context, path string, initial core.Payload) (core.Payload, error) {
	return h.runner.RunFile(ctx, path, initial)
}

// Execute runs an already parsed specification.
func (h *Hub) Execute(ctx context.Context, spec *pipeline.Spec, initial core.Payload) (core.Payload, error) {
	return h.runner.Execute(ctx, spec, initial)
}
