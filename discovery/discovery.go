package discovery

import (
	"fmt"

	"github.com/hupe1980/agenthub/logging"
	"github.com/hupe1980/agenthub/registry"
)

// Unit is a loadable piece of code that registers zero or more agents.
type Unit interface {
	Name() string
	Register(r *registry.Registry) error
}

type unitFunc struct {
	name string
	fn   func(r *registry.Registry) error
}

func (u unitFunc) Name() string                        { return u.name }
func (u unitFunc) Register(r *registry.Registry) error { return u.fn(r) }

// UnitFunc adapts a function to the Unit interface.
func UnitFunc(name string, fn func(r *registry.Registry) error) Unit {
	return unitFunc{name: name, fn: fn}
}

// Namespace groups units and nested namespaces.
type Namespace struct {
	Name     string
	Units    []Unit
	Children []*Namespace
}

// LoadError reports the unit that failed to load.
type LoadError struct {
	Unit string // fully qualified path, e.g. "agent/model/completion"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("discovery: load unit %s: %v", e.Unit, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Options configures Discover.
type Options struct {
	// Logger receives one debug line per loaded unit and a summary line.
	Logger logging.Logger
}

// Discover walks ns depth-first, loading its own units in order before its
// children. Each qualified unit path is loaded at most once per call.
func Discover(r *registry.Registry, ns *Namespace, optFns ...func(o *Options)) error {
	if r == nil {
		return fmt.Errorf("discovery: nil registry")
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	w := &walker{
		registry: r,
		logger:   logging.OrNoOp(opts.Logger),
		loaded:   make(map[string]struct{}),
	}

	if err := w.walk(ns, ""); err != nil {
		return err
	}

	w.logger.Info("discovery complete", "units", len(w.loaded), "agents", r.Len())

	return nil
}

type walker struct {
	registry *registry.Registry
	logger   logging.Logger
	loaded   map[string]struct{}
}

func (w *walker) walk(ns *Namespace, parent string) error {
	if ns == nil {
		return nil
	}

	path := join(parent, ns.Name)

	for _, u := range ns.Units {
		if u == nil {
			continue
		}

		key := join(path, u.Name())
		if _, done := w.loaded[key]; done {
			continue
		}

		if err := u.Register(w.registry); err != nil {
			return &LoadError{Unit: key, Err: err}
		}

		w.loaded[key] = struct{}{}
		w.logger.Debug("unit loaded", "unit", key)
	}

	for _, child := range ns.Children {
		if err := w.walk(child, path); err != nil {
			return err
		}
	}

	return nil
}

func join(parent, name string) string {
	switch {
	case parent == "":
		return name
	case name == "":
		return parent
	default:
		return parent + "/" + name
	}
}
