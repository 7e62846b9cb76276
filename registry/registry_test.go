package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/agenthub/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tagAgent struct{ tag string }

func (a *tagAgent) Process(_ context.Context, p core.Payload) (core.Payload, error) {
	out := p.Clone()
	out["tag"] = a.tag
	return out, nil
}

func tagFactory(tag string) core.Factory {
	return func(core.Config) (core.Agent, error) { return &tagAgent{tag: tag}, nil }
}

func TestRegister_ReturnsFactoryUnchanged(t *testing.T) {
	r := New()
	f := tagFactory("a")

	got := r.Register("A", f)

	assert.Equal(t, fmt.Sprintf("%p", f), fmt.Sprintf("%p", got))
	assert.True(t, r.Has("A"))
	assert.Equal(t, 1, r.Len())
}

func TestResolve_LastWriteWins(t *testing.T) {
	r := New()
	r.Register("Agent", tagFactory("first"))
	r.Register("Agent", tagFactory("second"))

	f, err := r.Resolve("Agent")
	require.NoError(t, err)

	a, err := f(nil)
	require.NoError(t, err)
	out, err := a.Process(context.Background(), core.Payload{})
	require.NoError(t, err)

	assert.Equal(t, "second", out["tag"])
	assert.Equal(t, 1, r.Len())
}

func TestResolve_NotRegistered(t *testing.T) {
	r := New()

	f, err := r.Resolve("NonExistentAgent")

	assert.Nil(t, f)
	require.ErrorIs(t, err, core.ErrNotRegistered)

	var nre *core.NotRegisteredError
	require.True(t, errors.As(err, &nre))
	assert.Equal(t, "NonExistentAgent", nre.Name)
}

func TestAdd_RejectsDuplicates(t *testing.T) {
	r := New()

	require.NoError(t, r.Add("Agent", tagFactory("a")))
	err := r.Add("Agent", tagFactory("b"))

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Error(t, r.Add("Nil", nil))
}

func TestNew_ConstructsWithConfig(t *testing.T) {
	r := New()
	var captured core.Config
	r.Register("Capture", func(cfg core.Config) (core.Agent, error) {
		captured = cfg
		return &tagAgent{}, nil
	})

	_, err := r.New("Capture", nil)
	require.NoError(t, err)
	assert.NotNil(t, captured)
	assert.Empty(t, captured)

	_, err = r.New("Capture", core.Config{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "v", captured["k"])
}

func TestNew_FactoryError(t *testing.T) {
	r := New()
	boom := errors.New("boom")
	r.Register("Broken", func(core.Config) (core.Agent, error) { return nil, boom })

	_, err := r.New("Broken", nil)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Broken")

	_, err = r.New("Missing", nil)
	assert.ErrorIs(t, err, core.ErrNotRegistered)
}

func TestNamesAndUnregister(t *testing.T) {
	r := New()
	r.Register("b", tagFactory("b"))
	r.Register("a", tagFactory("a"))

	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.True(t, r.Unregister("a"))
	assert.False(t, r.Unregister("a"))
	assert.Equal(t, []string{"b"}, r.Names())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New()
	r.Register("shared", tagFactory("x"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("agent-%d", i), tagFactory("y"))
		}(i)
		go func() {
			defer wg.Done()
			_, err := r.Resolve("shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, r.Len())
}

type mockLogger struct{ mock.Mock }

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(append([]any{msg}, args...)...) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(append([]any{msg}, args...)...) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(append([]any{msg}, args...)...) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(append([]any{msg}, args...)...) }

func TestRegister_OverwriteIsLogged(t *testing.T) {
	l := &mockLogger{}
	l.On("Debug", "agent registered", "agent", "Agent").Once()
	l.On("Warn", "agent registration overwritten", "agent", "Agent").Once()

	r := New(func(o *Options) { o.Logger = l })
	r.Register("Agent", tagFactory("a"))
	r.Register("Agent", tagFactory("b"))

	l.AssertExpectations(t)
}
