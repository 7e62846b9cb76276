package agent

import (
	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/discovery"
	"github.com/hupe1980/agenthub/registry"
)

// aliases maps short lowercase names to the canonical registry names.
var aliases = map[string]string{
	"echo":       EchoName,
	"template":   TemplateName,
	"set":        SetName,
	"completion": CompletionName,
	"expr":       ExpressionName,
}

// Registrar performs one registration on behalf of a unit.
type Registrar func(r *registry.Registry, name string, f core.Factory) error

// Overwrite registers with last-write-wins semantics.
func Overwrite(r *registry.Registry, name string, f core.Factory) error {
	r.Register(name, f)
	return nil
}

// Strict registers with registry.Registry.Add and fails on duplicates.
func Strict(r *registry.Registry, name string, f core.Factory) error {
	return r.Add(name, f)
}

// NamespaceOptions configures Namespace.
type NamespaceOptions struct {
	// Register performs each registration. Defaults to Overwrite.
	Register Registrar
	// Providers backs the Completion agent. Defaults to DefaultProviders().
	Providers map[string]ModelProvider
	// Aliases also registers the short lowercase names (echo, template, set,
	// expr, completion).
	Aliases bool
}

// Namespace returns the discovery tree for the built-in agents:
//
//	agent/echo
//	agent/template
//	agent/set
//	agent/expression
//	agent/model/completion
func Namespace(optFns ...func(o *NamespaceOptions)) *discovery.Namespace {
	opts := NamespaceOptions{
		Register:  Overwrite,
		Providers: DefaultProviders(),
		Aliases:   true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	unit := func(unitName, agentName string, f core.Factory) discovery.Unit {
		return discovery.UnitFunc(unitName, func(r *registry.Registry) error {
			if err := opts.Register(r, agentName, f); err != nil {
				return err
			}
			if !opts.Aliases {
				return nil
			}
			for alias, target := range aliases {
				if target == agentName {
					if err := opts.Register(r, alias, f); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	return &discovery.Namespace{
		Name: "agent",
		Units: []discovery.Unit{
			unit("echo", EchoName, func(cfg core.Config) (core.Agent, error) {
				return NewEcho(cfg), nil
			}),
			unit("template", TemplateName, func(cfg core.Config) (core.Agent, error) {
				a, err := NewTemplate(cfg)
				if err != nil {
					return nil, err
				}
				return a, nil
			}),
			unit("set", SetName, func(cfg core.Config) (core.Agent, error) {
				a, err := NewSet(cfg)
				if err != nil {
					return nil, err
				}
				return a, nil
			}),
			unit("expression", ExpressionName, func(cfg core.Config) (core.Agent, error) {
				a, err := NewExpression(cfg)
				if err != nil {
					return nil, err
				}
				return a, nil
			}),
		},
		Children: []*discovery.Namespace{
			{
				Name: "model",
				Units: []discovery.Unit{
					unit("completion", CompletionName, CompletionFactory(opts.Providers)),
				},
			},
		},
	}
}
