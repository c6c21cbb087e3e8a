package scenegraph

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(c *Container) []string {
	var out []string
	for _, child := range c.Children() {
		out = append(out, child.(*Container).Name)
	}
	return out
}

func TestContainer_AddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewBox()

	a.AddChild(child)
	b.AddChild(child)

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Same(t, b, child.Parent())
}

func TestContainer_RemoveChild(t *testing.T) {
	root := NewContainer("root")
	child := NewBox()
	root.AddChild(child)

	assert.True(t, root.RemoveChild(child))
	assert.Nil(t, child.Parent())
	assert.False(t, root.RemoveChild(child))
	assert.False(t, child.Destroyed(), "removing does not destroy")
}

func TestContainer_SortChildrenIsStable(t *testing.T) {
	root := NewContainer("root")
	for _, name := range []string{"c", "a", "b", "d"} {
		root.AddChild(NewContainer(name))
	}
	children := root.Children()
	children[0].SetZIndex(2)
	children[1].SetZIndex(0)
	children[2].SetZIndex(0)
	children[3].SetZIndex(1)

	root.SortChildren()

	assert.Equal(t, []string{"a", "b", "d", "c"}, names(root))
}

func TestContainer_SortChildrenTreatsUnsetZAsZero(t *testing.T) {
	root := NewContainer("root")
	first := NewContainer("first")
	unset := NewContainer("unset")
	negative := NewContainer("negative")
	root.AddChild(first)
	root.AddChild(unset)
	root.AddChild(negative)
	first.SetZIndex(1)
	negative.SetZIndex(-1)

	root.SortChildren()

	assert.Equal(t, []string{"negative", "unset", "first"}, names(root))
	_, ok := unset.ZIndex()
	assert.False(t, ok)
}

func TestContainer_DestroyRecurses(t *testing.T) {
	parent := NewContainer("parent")
	root := NewContainer("root")
	inner := NewContainer("inner")
	leaf := NewBox()
	parent.AddChild(root)
	root.AddChild(inner)
	inner.AddChild(leaf)

	root.Destroy()

	assert.True(t, root.Destroyed())
	assert.True(t, inner.Destroyed())
	assert.True(t, leaf.Destroyed())
	assert.Equal(t, 0, parent.Len())
	assert.Equal(t, 0, root.Len())

	// second destroy is a no-op
	root.Destroy()
	assert.True(t, root.Destroyed())
}

func TestContainer_AddDestroyedChildIgnored(t *testing.T) {
	root := NewContainer("root")
	box := NewBox()
	box.Destroy()
	root.AddChild(box)
	assert.Equal(t, 0, root.Len())
}

func TestPaint_LaterSiblingsPaintOnTop(t *testing.T) {
	root := NewContainer("root")
	back := NewBox()
	back.Rect = layout.Rect(0, 0, 6, 1)
	back.Label = "back!!"
	front := NewBox()
	front.Rect = layout.Rect(0, 0, 3, 1)
	front.Label = "top"
	root.AddChild(back)
	root.AddChild(front)

	dl := render.NewDisplayContext()
	next := Paint(root, dl, layout.Rect(0, 0, 6, 1), 10)

	assert.Equal(t, 12, next)
	out := dl.RenderToString(6, 1)
	assert.True(t, strings.HasPrefix(out, "topk!!"), "got %q", out)
}

func TestPaint_HiddenContainerSkipsChildren(t *testing.T) {
	root := NewContainer("root")
	box := NewBox()
	box.Rect = layout.Rect(0, 0, 2, 1)
	root.AddChild(box)
	root.SetVisible(false)

	dl := render.NewDisplayContext()
	Paint(root, dl, layout.Rect(0, 0, 5, 5), 0)

	assert.Equal(t, 0, dl.Len())
}

func TestBox_PaintClipsLabelAndRegistersInteraction(t *testing.T) {
	box := NewBox()
	box.Rect = layout.Rect(-2, 0, 6, 2)
	box.Label = "abcdef"
	box.Style = lipgloss.NewStyle()
	box.Msg = "hit"
	box.Interactions = render.InteractionClick

	dl := render.NewDisplayContext()
	Paint(box, dl, layout.Rect(0, 0, 3, 3), 0)

	draws := dl.DrawList()
	require.Len(t, draws, 1)
	assert.Equal(t, "cde", draws[0].Content)
	assert.Equal(t, layout.Rect(0, 0, 3, 1), draws[0].Rect)

	op, ok := dl.HitTest(1, 1, render.InteractionClick)
	require.True(t, ok)
	assert.Equal(t, "hit", op.Msg)
	_, ok = dl.HitTest(3, 0, render.InteractionClick)
	assert.False(t, ok, "interaction is clipped too")
}

func TestBox_WideClusterCutByClipKeepsColumns(t *testing.T) {
	box := NewBox()
	box.Rect = layout.Rect(-1, 0, 4, 1)
	box.Label = "界ab"
	box.Style = lipgloss.NewStyle()

	dl := render.NewDisplayContext()
	Paint(box, dl, layout.Rect(0, 0, 4, 1), 0)

	draws := dl.DrawList()
	require.Len(t, draws, 1)
	assert.Equal(t, "ab", draws[0].Content)
	assert.Equal(t, layout.Rect(1, 0, 2, 1), draws[0].Rect, "'a' stays in column 1")
}

func TestBox_OutsideClipPaintsNothing(t *testing.T) {
	box := NewBox()
	box.Rect = layout.Rect(10, 10, 2, 2)

	dl := render.NewDisplayContext()
	Paint(box, dl, layout.Rect(0, 0, 5, 5), 0)

	assert.Equal(t, 0, dl.Len())
}

func TestPaintAt_TranslatesRectangles(t *testing.T) {
	box := NewBox()
	box.Rect = layout.Rect(0, 0, 2, 1)
	box.Label = "ab"
	box.Msg = "hit"
	box.Interactions = render.InteractionClick

	dl := render.NewDisplayContext()
	next := PaintAt(box, dl, layout.Rect(10, 5, 10, 10), layout.Pos(10, 5), 7)

	assert.Equal(t, 8, next)
	draws := dl.DrawList()
	require.Len(t, draws, 1)
	assert.Equal(t, layout.Rect(10, 5, 2, 1), draws[0].Rect)
	_, ok := dl.HitTest(11, 5, render.InteractionClick)
	assert.True(t, ok)
}
