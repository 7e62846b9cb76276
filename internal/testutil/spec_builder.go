package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agenthub/core"
	"gopkg.in/yaml.v3"
)

type stepDoc struct {
	Name   string      `yaml:"name"`
	Config core.Config `yaml:"config,omitempty"`
}

// SpecBuilder assembles workflow specification documents.
// Example:
//
//	doc := NewSpecBuilder().Step("EchoAgent", core.Config{"prefix": "[A]"}).YAML(t)
type SpecBuilder struct {
	steps []stepDoc
}

// NewSpecBuilder creates a builder with no steps.
func NewSpecBuilder() *SpecBuilder { return &SpecBuilder{} }

// Step appends an agent step (chainable). cfg may be nil.
func (b *SpecBuilder) Step(name string, cfg core.Config) *SpecBuilder {
	b.steps = append(b.steps, stepDoc{Name: name, Config: cfg})
	return b
}

// YAML renders the document.
func (b *SpecBuilder) YAML(t testing.TB) string {
	t.Helper()

	steps := b.steps
	if steps == nil {
		steps = []stepDoc{}
	}

	out, err := yaml.Marshal(map[string]any{"agents": steps})
	if err != nil {
		t.Fatalf("marshal spec: %v", err)
	}

	return string(out)
}

// File writes the document to a temporary file and returns its path.
func (b *SpecBuilder) File(t testing.TB) string {
	t.Helper()
	return WriteSpec(t, b.YAML(t))
}

// WriteSpec writes content to workflow.yaml in a per-test temporary
// directory and returns the path.
func WriteSpec(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workflow.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	return path
}
