// Package discovery populates a registry from a tree of registration units.
//
// Each agent-defining package exposes one or more Units; start-up code groups
// them into Namespaces (which may nest) and calls Discover once before any
// pipeline runs. This replaces import-time side effects with an explicit,
// testable bootstrap step:
//
//	ns := &discovery.Namespace{
//		Name:     "app",
//		Children: []*discovery.Namespace{agent.Namespace(), custom.Namespace()},
//	}
//	if err := discovery.Discover(reg, ns); err != nil {
//		return err
//	}
//
// Discovery stops at the first failing unit and returns its error; nothing is
// swallowed. Running it again is harmless: units re-register and the registry
// keeps the last factory written for each name.
package discovery
