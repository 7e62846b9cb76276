package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/agenthub/core"
	"gopkg.in/yaml.v3"
)

const agentsKey = "agents"

// Step names one agent and the configuration it is built with.
type Step struct {
	Name   string      `yaml:"name" json:"name" jsonschema:"minLength=1"`
	Config core.Config `yaml:"config,omitempty" json:"config,omitempty"`
}

// Spec is a validated workflow specification.
type Spec struct {
	Agents []Step `yaml:"agents" json:"agents"`
}

// Parse decodes and validates a workflow specification. Since JSON is a
// subset of YAML both encodings are accepted.
func Parse(data []byte) (*Spec, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &core.MalformedSpecError{Reason: err.Error()}
	}

	return fromDocument(normalize(doc))
}

// Load reads a workflow specification from r.
func Load(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workflow spec: %w", err)
	}

	return Parse(data)
}

// LoadFile reads a workflow specification from path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow spec: %w", err)
	}

	return Parse(data)
}

func fromDocument(doc any) (*Spec, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &core.MalformedSpecError{Key: agentsKey, Reason: "document is not a mapping"}
	}

	raw, ok := root[agentsKey]
	if !ok {
		return nil, &core.MalformedSpecError{Key: agentsKey, Reason: "key is missing"}
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case nil:
		// "agents:" with no value is an empty pipeline
	default:
		return nil, &core.MalformedSpecError{Key: agentsKey, Reason: fmt.Sprintf("expected a list, got %T", raw)}
	}

	spec := &Spec{Agents: make([]Step, 0, len(items))}

	for i, item := range items {
		step, err := stepFrom(item)
		if err != nil {
			return nil, &core.MalformedSpecError{Position: i + 1, Reason: err.Error()}
		}

		spec.Agents = append(spec.Agents, step)
	}

	return spec, nil
}

func stepFrom(item any) (Step, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return Step{}, fmt.Errorf("expected a mapping, got %T", item)
	}

	name, ok := m["name"].(string)
	if !ok || name == "" {
		return Step{}, fmt.Errorf("missing required field %q", "name")
	}

	cfg := core.Config{}

	switch c := m["config"].(type) {
	case nil:
	case map[string]any:
		for k, v := range c {
			cfg[k] = v
		}
	default:
		return Step{}, fmt.Errorf("field %q must be a mapping, got %T", "config", c)
	}

	return Step{Name: name, Config: cfg}, nil
}

// normalize converts the map[any]any values yaml.v3 produces for
// non-string keys into map[string]any so payloads stay JSON-encodable.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
