// Package layers draws the layer list shown beside the canvas.
package layers

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/ui/common"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// SelectMsg is sent when a layer name is clicked.
type SelectMsg struct {
	Name string
}

// ToggleMsg is sent when a layer's visibility marker is clicked.
type ToggleMsg struct {
	Name string
}

type scrollMsg struct {
	Delta      int
	Horizontal bool
}

func (m scrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.Delta = delta
	m.Horizontal = horizontal
	return m
}

var _ common.ImmediateModel = (*Model)(nil)

type styles struct {
	text     lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	hidden   lipgloss.Style
}

// Model lists layers front to back, so the layer drawn on top is first.
type Model struct {
	layout    *project.Layout
	selected  string
	startLine int
	styles    styles
}

func New(l *project.Layout) *Model {
	return &Model{
		layout: l,
		styles: styles{
			text:     common.DefaultPalette.Get("panel"),
			title:    common.DefaultPalette.Get("panel title"),
			selected: common.DefaultPalette.Get("panel selected"),
			hidden:   common.DefaultPalette.Get("panel hidden"),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(scrollMsg); ok && !msg.Horizontal {
		m.startLine = max(m.startLine+msg.Delta, 0)
	}
	return nil
}

func (m *Model) SetSelected(name string) {
	m.selected = name
}

// rows returns the layers in display order.
func (m *Model) rows() []*project.Layer {
	all := m.layout.Layers()
	out := make([]*project.Layer, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return out
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if box.R.Dx() <= 0 || box.R.Dy() <= 0 {
		return
	}
	dl.AddFill(box.R, ' ', m.styles.text, render.ZPanel)

	titleBox, listBox := box.CutTop(1)
	dl.Text(titleBox.R.Min.X, titleBox.R.Min.Y, render.ZPanel).
		Clip(titleBox.R.Max.X).
		Styled(" Layers", m.styles.title).
		Done()
	dl.AddBold(titleBox.R, render.ZPanel+1)

	rows := m.rows()
	visibleRows := listBox.R.Dy()
	if visibleRows <= 0 {
		return
	}
	m.startLine = min(m.startLine, max(len(rows)-visibleRows, 0))

	for row := 0; row < visibleRows; row++ {
		index := m.startLine + row
		if index >= len(rows) {
			break
		}
		layer := rows[index]
		style := m.styles.text
		if !layer.Visible() {
			style = m.styles.hidden
		}
		if layer.Name() == m.selected {
			style = m.styles.selected
		}
		marker := "[x] "
		if !layer.Visible() {
			marker = "[ ] "
		}
		y := listBox.R.Min.Y + row
		rowRect := layout.Rect(listBox.R.Min.X, y, listBox.R.Dx(), 1)
		dl.AddFill(rowRect, ' ', style, render.ZPanel)
		dl.Text(listBox.R.Min.X, y, render.ZPanel).
			Clip(listBox.R.Max.X).
			Write(" ").
			Clickable(marker, style, ToggleMsg{Name: layer.Name()}).
			Clickable(layer.Name(), style, SelectMsg{Name: layer.Name()}).
			Done()
		if !layer.Visible() {
			dl.AddDim(rowRect, render.ZPanel+1)
		}
		if layer.Name() == m.selected {
			dl.AddReverse(rowRect, render.ZPanel+1)
		}
	}
	dl.AddInteraction(listBox.R, scrollMsg{}, render.InteractionScroll, render.ZPanel)
}
