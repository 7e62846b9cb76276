package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/agenthub/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAgent_NotImplemented(t *testing.T) {
	b := NewBaseAgent(nil)

	out, err := b.Process(context.Background(), core.Payload{"input": "x"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, core.ErrNotImplemented)
	assert.NotNil(t, b.Config())
}

func TestBaseAgent_EmbeddedWithoutOverride(t *testing.T) {
	type unfinished struct{ BaseAgent }
	var a core.Agent = &unfinished{BaseAgent: NewBaseAgent(core.Config{"k": "v"})}

	_, err := a.Process(context.Background(), core.Payload{})
	assert.ErrorIs(t, err, core.ErrNotImplemented)
}

func TestEcho_DefaultPrefix(t *testing.T) {
	in := core.Payload{"input": "test"}

	out, err := NewEcho(nil).Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, core.Payload{"input": "test", "message": "Echo: test"}, out)
	assert.NotContains(t, in, "message")
}

func TestEcho_CustomPrefix(t *testing.T) {
	out, err := NewEcho(core.Config{"prefix": ">>"}).Process(context.Background(), core.Payload{"input": "hello"})
	require.NoError(t, err)

	assert.Equal(t, ">> hello", out["message"])
}

func TestEcho_MissingInput(t *testing.T) {
	out, err := NewEcho(nil).Process(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Echo: ", out["message"])
}

func TestEcho_OverwritesMessage(t *testing.T) {
	out, err := NewEcho(core.Config{"prefix": "[B]"}).Process(context.Background(), core.Payload{
		"input":   "payload",
		"message": "[A] payload",
	})
	require.NoError(t, err)

	assert.Equal(t, "[B] payload", out["message"])
}

func TestTemplate(t *testing.T) {
	a, err := NewTemplate(core.Config{"template": "Hello {{upper .name}}", "output_key": "greeting"})
	require.NoError(t, err)

	out, err := a.Process(context.Background(), core.Payload{"name": "ada"})
	require.NoError(t, err)

	assert.Equal(t, "Hello ADA", out["greeting"])
	assert.Equal(t, "ada", out["name"])
}

func TestTemplate_DefaultOutputKey(t *testing.T) {
	a, err := NewTemplate(core.Config{"template": "{{.input}}!"})
	require.NoError(t, err)

	out, err := a.Process(context.Background(), core.Payload{"input": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi!", out["message"])
}

func TestTemplate_ConfigErrors(t *testing.T) {
	_, err := NewTemplate(nil)
	assert.Error(t, err)

	_, err = NewTemplate(core.Config{"template": "x", "strict": "maybe"})
	assert.Error(t, err)

	_, err = NewTemplate(core.Config{"template": "{{.name"})
	assert.Error(t, err)
}

func TestTemplate_StrictMissingKey(t *testing.T) {
	a, err := NewTemplate(core.Config{"template": "{{.missing}}", "strict": true})
	require.NoError(t, err)

	_, err = a.Process(context.Background(), core.Payload{})
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	a, err := NewSet(core.Config{"values": map[string]any{"stage": "draft", "input": "new"}})
	require.NoError(t, err)

	in := core.Payload{"input": "old", "keep": 1}
	out, err := a.Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, core.Payload{"input": "new", "keep": 1, "stage": "draft"}, out)
	assert.Equal(t, "old", in["input"])

	_, err = NewSet(core.Config{"values": []any{1}})
	assert.Error(t, err)
}

func TestExpression(t *testing.T) {
	a, err := NewExpression(core.Config{"expression": "score * weight > 10", "output_key": "pass"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"score", "weight"}, a.Vars())

	out, err := a.Process(context.Background(), core.Payload{"score": 4.0, "weight": 3.0})
	require.NoError(t, err)
	assert.Equal(t, true, out["pass"])

	out, err = a.Process(context.Background(), core.Payload{"score": 1.0, "weight": 3.0})
	require.NoError(t, err)
	assert.Equal(t, false, out["pass"])
}

func TestExpression_Arithmetic(t *testing.T) {
	a, err := NewExpression(core.Config{"expression": "(a + b) / 2"})
	require.NoError(t, err)

	out, err := a.Process(context.Background(), core.Payload{"a": 2.0, "b": 4.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, out["result"])
}

func TestExpression_Errors(t *testing.T) {
	_, err := NewExpression(nil)
	assert.Error(t, err)

	_, err = NewExpression(core.Config{"expression": "(a +"})
	assert.Error(t, err)

	a, err := NewExpression(core.Config{"expression": "missing + 1"})
	require.NoError(t, err)
	_, err = a.Process(context.Background(), core.Payload{})
	assert.Error(t, err)
}
