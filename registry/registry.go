package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/logging"
)

// ErrAlreadyRegistered is returned by Add when the name is already taken.
var ErrAlreadyRegistered = errors.New("agent already registered")

// Options configures a Registry.
type Options struct {
	// Logger receives overwrite warnings. Defaults to NoOp logger if nil.
	Logger logging.Logger
}

// Registry is a concurrency-safe name to factory mapping.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]core.Factory
	logger    logging.Logger
}

// New creates an empty Registry.
func New(optFns ...func(o *Options)) *Registry {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Registry{
		factories: make(map[string]core.Factory),
		logger:    logging.OrNoOp(opts.Logger),
	}
}

// Register records f under name, replacing any previous entry, and returns f
// unchanged so registration can wrap a constructor expression.
func (r *Registry) Register(name string, f core.Factory) core.Factory {
	r.mu.Lock()
	_, existed := r.factories[name]
	r.factories[name] = f
	r.mu.Unlock()

	if existed {
		r.logger.Warn("agent registration overwritten", "agent", name)
	} else {
		r.logger.Debug("agent registered", "agent", name)
	}

	return f
}

// Add records f under name and fails if the name is already registered.
func (r *Registry) Add(name string, f core.Factory) error {
	if f == nil {
		return fmt.Errorf("register %q: nil factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.factories[name] = f
	r.logger.Debug("agent registered", "agent", name)

	return nil
}

// Resolve returns the factory registered under name. The error is a
// *core.NotRegisteredError carrying name.
func (r *Registry) Resolve(name string) (core.Factory, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &core.NotRegisteredError{Name: name}
	}

	return f, nil
}

// New resolves name and constructs an agent from cfg.
func (r *Registry) New(name string, cfg core.Config) (core.Agent, error) {
	f, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = core.Config{}
	}

	a, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("construct agent %q: %w", name, err)
	}

	return a, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Unregister removes name and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; !ok {
		return false
	}
	delete(r.factories, name)
	return true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
