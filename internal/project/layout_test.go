package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layerNames(l *Layout) []string {
	var out []string
	for _, layer := range l.Layers() {
		out = append(out, layer.Name())
	}
	return out
}

func newLayout(t *testing.T, names ...string) *Layout {
	t.Helper()
	l := NewLayout("test")
	for _, name := range names {
		require.NoError(t, l.AddLayer(NewLayer(name)))
	}
	return l
}

func TestLayout_InsertLayer(t *testing.T) {
	l := newLayout(t, "Background", "Main")

	require.NoError(t, l.InsertLayer(NewLayer("Middle"), 1))
	require.NoError(t, l.InsertLayer(NewLayer("Top"), 99))

	assert.Equal(t, []string{"Background", "Middle", "Main", "Top"}, layerNames(l))
}

func TestLayout_RejectsDuplicateAndEmptyNames(t *testing.T) {
	l := newLayout(t, "Main")

	assert.Error(t, l.AddLayer(NewLayer("Main")))
	assert.Error(t, l.AddLayer(NewLayer("")))
	assert.Equal(t, 1, l.LayerCount())
}

func TestLayout_SwapAndMove(t *testing.T) {
	l := newLayout(t, "a", "b", "c")

	assert.True(t, l.SwapLayers(0, 2))
	assert.Equal(t, []string{"c", "b", "a"}, layerNames(l))

	assert.True(t, l.MoveLayer(0, 2))
	assert.Equal(t, []string{"b", "a", "c"}, layerNames(l))

	assert.False(t, l.SwapLayers(0, 3))
	assert.False(t, l.MoveLayer(-1, 0))
}

func TestLayout_ReplaceLayerKeepsPosition(t *testing.T) {
	l := newLayout(t, "a", "b")
	old, _ := l.Layer("b")
	replacement := NewLayer("b")

	assert.True(t, l.ReplaceLayer(replacement))

	got, ok := l.Layer("b")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.NotSame(t, old, got)
	assert.Equal(t, 1, l.LayerPosition("b"))
	assert.False(t, l.ReplaceLayer(NewLayer("missing")))
}

func TestLayout_LayersReturnsCopy(t *testing.T) {
	l := newLayout(t, "a", "b")
	layers := l.Layers()
	layers[0] = nil

	first, ok := l.LayerAt(0)
	require.True(t, ok)
	assert.Equal(t, "a", first.Name())
}

func TestProject_Objects(t *testing.T) {
	p := NewProject("p")
	require.NoError(t, p.AddObject(&Object{Name: "Tree"}))
	require.NoError(t, p.AddObject(&Object{Name: "Rock"}))
	assert.Error(t, p.AddObject(&Object{Name: "Tree"}))

	assert.True(t, p.RemoveObject("Tree"))
	assert.False(t, p.RemoveObject("Tree"))
	objs := p.Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, "Rock", objs[0].Name)
}
