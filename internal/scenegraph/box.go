package scenegraph

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
	"github.com/rivo/uniseg"
)

// Box is a filled rectangle of cells with an optional one-line label.
type Box struct {
	base
	Rect  layout.Rectangle
	Label string
	Fill  rune
	Style lipgloss.Style

	// Msg is registered as an interaction over the visible part of the box
	// when Interactions is non-zero.
	Msg          tea.Msg
	Interactions render.InteractionType
}

func NewBox() *Box {
	return &Box{Fill: ' '}
}

func (b *Box) Paint(p *Painter) {
	if b.hidden || b.destroyed {
		return
	}
	z := p.next()
	rect := b.Rect.Add(p.origin)
	visible := rect.Intersect(p.clip)
	if visible.Empty() {
		return
	}
	p.dl.AddFill(visible, b.Fill, b.Style, z)
	if label, lead := clippedLabel(b.Label, rect, visible); label != "" {
		labelRect := layout.Rect(visible.Min.X+lead, visible.Min.Y, uniseg.StringWidth(label), 1)
		p.dl.AddDraw(labelRect, b.Style.Render(label), z)
	}
	if b.Interactions != 0 {
		p.dl.AddInteraction(visible, b.Msg, b.Interactions, z)
	}
}

// clippedLabel returns the part of label that falls inside visible when the
// label starts at the left edge of rect, and how many columns after
// visible.Min.X it starts. A wide cluster cut by the left edge is dropped,
// which leaves a gap before the first kept one.
func clippedLabel(label string, rect, visible layout.Rectangle) (string, int) {
	if label == "" || visible.Min.Y != rect.Min.Y {
		return "", 0
	}
	skip := visible.Min.X - rect.Min.X
	limit := visible.Dx()

	var sb strings.Builder
	col, lead := 0, -1
	state := -1
	rest := label
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if col < skip {
			col += w
			continue
		}
		if col-skip+w > limit {
			break
		}
		if lead < 0 {
			lead = col - skip
		}
		sb.WriteString(cluster)
		col += w
	}
	if sb.Len() == 0 {
		return "", 0
	}
	return sb.String(), lead
}

// Destroy detaches the box from its parent.
func (b *Box) Destroy() {
	if b.destroyed {
		return
	}
	if b.parent != nil {
		b.parent.RemoveChild(b)
	}
	b.Msg = nil
	b.destroyed = true
}
