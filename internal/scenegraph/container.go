package scenegraph

import (
	"slices"
)

// Container groups child nodes. Children paint in slice order.
type Container struct {
	base
	Name     string
	children []Node
}

func NewContainer(name string) *Container {
	return &Container{Name: name}
}

// AddChild appends n, moving it out of its previous parent if it had one.
func (c *Container) AddChild(n Node) {
	if n == nil || n.Destroyed() {
		return
	}
	if prev := n.Parent(); prev != nil {
		prev.RemoveChild(n)
	}
	n.setParent(c)
	c.children = append(c.children, n)
}

// RemoveChild detaches n without destroying it. It reports whether n was a child.
func (c *Container) RemoveChild(n Node) bool {
	i := slices.Index(c.children, n)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	n.setParent(nil)
	return true
}

// Children returns a copy of the child list.
func (c *Container) Children() []Node {
	return slices.Clone(c.children)
}

func (c *Container) Len() int {
	return len(c.children)
}

// SortChildren orders children by ascending z-index. The sort is stable, and
// a child that never had a z-index assigned sorts as if it were 0.
func (c *Container) SortChildren() {
	slices.SortStableFunc(c.children, func(a, b Node) int {
		return effectiveZ(a) - effectiveZ(b)
	})
}

func effectiveZ(n Node) int {
	if z, ok := n.ZIndex(); ok {
		return z
	}
	return 0
}

func (c *Container) Paint(p *Painter) {
	if c.hidden || c.destroyed {
		return
	}
	for _, child := range c.children {
		child.Paint(p)
	}
}

// Destroy destroys every child, then detaches the container from its parent.
func (c *Container) Destroy() {
	if c.destroyed {
		return
	}
	// children remove themselves from c.children as they go
	for _, child := range slices.Clone(c.children) {
		child.Destroy()
	}
	c.children = nil
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.destroyed = true
}
