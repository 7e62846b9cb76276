// Package pipeline loads declarative workflow specifications and runs them
// as a left fold over a payload.
//
// A specification is a YAML (or JSON) document listing the agents to run:
//
//	agents:
//	  - name: EchoAgent
//	    config:
//	      prefix: "[A]"
//	  - name: EchoAgent
//	    config:
//	      prefix: "[B]"
//
// Each step is resolved through a registry.Registry, constructed with its
// config and handed the output of the previous step. The first error stops
// the run; there are no retries and no partial results.
package pipeline
