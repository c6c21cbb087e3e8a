// Package scenegraph is a small retained-mode drawable tree for the terminal
// canvas. Nodes keep their state across frames; painting walks the tree in
// child order and emits operations into a render.DisplayContext.
package scenegraph

import (
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// Node is anything that can live in a Container.
type Node interface {
	// ZIndex reports the node's z-index and whether one was ever assigned.
	ZIndex() (int, bool)
	SetZIndex(z int)
	Parent() *Container
	Visible() bool
	SetVisible(visible bool)
	// Paint emits the node into p. Hidden nodes emit nothing.
	Paint(p *Painter)
	// Destroy detaches the node from its parent and releases it. Destroying
	// twice is a no-op.
	Destroy()
	Destroyed() bool

	setParent(c *Container)
}

// base holds the state shared by every node type.
type base struct {
	parent    *Container
	z         int
	zSet      bool
	hidden    bool
	destroyed bool
}

func (b *base) ZIndex() (int, bool) { return b.z, b.zSet }

func (b *base) SetZIndex(z int) {
	b.z = z
	b.zSet = true
}

func (b *base) Parent() *Container { return b.parent }

func (b *base) setParent(c *Container) { b.parent = c }

func (b *base) Visible() bool { return !b.hidden }

func (b *base) SetVisible(visible bool) { b.hidden = !visible }

func (b *base) Destroyed() bool { return b.destroyed }

// Painter carries the display context and the running paint order for one
// paint pass. Every painted node gets a z one higher than the previous one so
// later siblings end up on top.
type Painter struct {
	dl     *render.DisplayContext
	clip   layout.Rectangle
	origin layout.Position
	z      int
}

func NewPainter(dl *render.DisplayContext, clip layout.Rectangle, baseZ int) *Painter {
	return &Painter{dl: dl, clip: clip, z: baseZ}
}

// Clip is the region paint output is restricted to.
func (p *Painter) Clip() layout.Rectangle { return p.clip }

// Origin is added to node rectangles before they are painted.
func (p *Painter) Origin() layout.Position { return p.origin }

// Z returns the z the next painted node will use.
func (p *Painter) Z() int { return p.z }

func (p *Painter) next() int {
	z := p.z
	p.z++
	return z
}

// Paint draws root and everything under it, returning the first unused z.
func Paint(root Node, dl *render.DisplayContext, clip layout.Rectangle, baseZ int) int {
	p := NewPainter(dl, clip, baseZ)
	root.Paint(p)
	return p.z
}

// PaintAt is Paint with node rectangles translated by origin. The clip is in
// screen coordinates.
func PaintAt(root Node, dl *render.DisplayContext, clip layout.Rectangle, origin layout.Position, baseZ int) int {
	p := NewPainter(dl, clip, baseZ)
	p.origin = origin
	root.Paint(p)
	return p.z
}
