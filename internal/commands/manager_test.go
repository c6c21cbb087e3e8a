package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context) error { return nil }

func TestManager_RegisterKeepsOrder(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(Command{Name: "b", Handler: noop}))
	require.NoError(t, m.Register(Command{Name: "a", Handler: noop}))
	require.NoError(t, m.Register(Command{Name: "c", Handler: noop}))

	var names []string
	for _, cmd := range m.Commands() {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestManager_RegisterRejects(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(Command{Name: "a", Handler: noop}))

	err := m.Register(Command{Name: "a", Handler: noop})
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Error(t, m.Register(Command{Handler: noop}))
	assert.Error(t, m.Register(Command{Name: "b"}))
}

func TestManager_Deregister(t *testing.T) {
	m := NewManager()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, m.Register(Command{Name: name, Handler: noop}))
	}

	assert.True(t, m.Deregister("a"))
	assert.False(t, m.Deregister("a"))

	_, ok := m.Command("a")
	assert.False(t, ok)
	cmd, ok := m.Command("c")
	require.True(t, ok)
	assert.Equal(t, "c", cmd.Name)
	assert.Len(t, m.Commands(), 2)

	require.NoError(t, m.Register(Command{Name: "a", Handler: noop}), "a name can be reused once removed")
}

func TestManager_Execute(t *testing.T) {
	m := NewManager()
	ran := 0
	require.NoError(t, m.Register(Command{Name: "run", Handler: func(ctx context.Context) error {
		ran++
		assert.Same(t, m, FromContext(ctx))
		return nil
	}}))

	require.NoError(t, m.Execute(context.Background(), "run"))
	assert.Equal(t, 1, ran)
}

func TestManager_ExecuteErrors(t *testing.T) {
	m := NewManager()
	enabled := false
	boom := errors.New("boom")
	require.NoError(t, m.Register(Command{Name: "off", Enabled: func() bool { return enabled }, Handler: noop}))
	require.NoError(t, m.Register(Command{Name: "fail", Handler: func(context.Context) error { return boom }}))

	assert.ErrorIs(t, m.Execute(context.Background(), "missing"), ErrUnknownCommand)
	assert.ErrorIs(t, m.Execute(context.Background(), "off"), ErrCommandDisabled)
	assert.False(t, m.IsEnabled("off"))

	enabled = true
	assert.NoError(t, m.Execute(context.Background(), "off"))
	assert.True(t, m.IsEnabled("off"))

	err := m.Execute(context.Background(), "fail")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `command "fail"`)
}

func TestFromContext(t *testing.T) {
	assert.Same(t, Default(), FromContext(context.Background()))

	m := NewManager()
	ctx := WithManager(context.Background(), m)
	assert.Same(t, m, FromContext(ctx))

	assert.Same(t, Default(), FromContext(WithManager(context.Background(), nil)))
}
