package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/rivo/uniseg"
)

// TextBuilder lays out a single line of styled, optionally clickable segments.
type TextBuilder struct {
	dl       *DisplayContext
	segments []textSegment
	x        int
	y        int
	z        int
	maxX     int
}

type textSegment struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
}

func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{
		dl:   dl,
		x:    x,
		y:    y,
		z:    z,
		maxX: -1,
	}
}

// Clip stops output at column maxX (exclusive).
func (tb *TextBuilder) Clip(maxX int) *TextBuilder {
	tb.maxX = maxX
	return tb
}

func (tb *TextBuilder) Write(text string) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text})
	return tb
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{
		text:    text,
		style:   style,
		onClick: onClick,
	})
	return tb
}

func (tb *TextBuilder) Done() {
	x := tb.x

	for _, seg := range tb.segments {
		width := uniseg.StringWidth(seg.text)
		if width == 0 {
			continue
		}
		if tb.maxX >= 0 && x+width > tb.maxX {
			width = max(tb.maxX-x, 0)
			if width == 0 {
				return
			}
		}

		segRect := layout.Rect(x, tb.y, width, 1)
		tb.dl.AddDraw(segRect, seg.style.Render(seg.text), tb.z)

		if seg.onClick != nil {
			tb.dl.AddInteraction(segRect, seg.onClick, InteractionClick, tb.z)
		}

		x += width
	}
}
