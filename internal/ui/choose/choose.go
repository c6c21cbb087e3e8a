package choose

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/common"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// Option is one entry of the list. Value is what SelectedMsg reports.
type Option struct {
	Value    string
	Text     string
	Disabled bool
}

type SelectedMsg struct {
	Value string
}

type CancelledMsg struct{}

type itemClickMsg struct {
	Index int
}

type itemScrollMsg struct {
	Delta      int
	Horizontal bool
}

func (m itemScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.Delta = delta
	m.Horizontal = horizontal
	return m
}

var _ common.ImmediateModel = (*Model)(nil)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "ctrl+n")),
	Apply:  key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

type Model struct {
	options   []Option
	selected  int
	startLine int
	title     string
	styles    styles
}

type styles struct {
	border   lipgloss.Style
	text     lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	disabled lipgloss.Style
}

const maxVisibleItems = 20

func New(title string, options []Option) *Model {
	return &Model{
		options: options,
		title:   title,
		styles: styles{
			border:   common.DefaultPalette.GetBorder("menu border", lipgloss.RoundedBorder()),
			text:     common.DefaultPalette.Get("menu text"),
			title:    common.DefaultPalette.Get("menu title"),
			selected: common.DefaultPalette.Get("menu selected"),
			disabled: common.DefaultPalette.Get("menu disabled"),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the index of the highlighted option.
func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Up):
			m.move(-1)
		case key.Matches(msg, keys.Down):
			m.move(1)
		case key.Matches(msg, keys.Apply):
			return m.selectCurrent()
		case key.Matches(msg, keys.Cancel):
			return newCmd(CancelledMsg{})
		default:
			if r := msg.String(); len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
				idx := int(r[0] - '1')
				if idx < len(m.options) {
					m.selected = idx
					return m.selectCurrent()
				}
			}
		}
	case itemScrollMsg:
		if msg.Horizontal {
			return nil
		}
		m.move(msg.Delta)
	case itemClickMsg:
		if msg.Index < 0 || msg.Index >= len(m.options) {
			return nil
		}
		m.selected = msg.Index
		return m.selectCurrent()
	}
	return nil
}

func (m *Model) move(delta int) {
	if len(m.options) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.options)-1)
}

func (m *Model) selectCurrent() tea.Cmd {
	if len(m.options) == 0 {
		return newCmd(CancelledMsg{})
	}
	option := m.options[m.selected]
	if option.Disabled {
		return nil
	}
	return newCmd(SelectedMsg{Value: option.Value})
}

func (m *Model) label(index int) string {
	option := m.options[index]
	text := option.Text
	if text == "" {
		text = option.Value
	}
	if index < 9 {
		return fmt.Sprintf("%d. %s", index+1, text)
	}
	return "   " + text
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	maxContentWidth := max(box.R.Dx()-2, 0)
	maxContentHeight := max(box.R.Dy()-2, 0)
	if maxContentWidth <= 0 || maxContentHeight <= 0 {
		return
	}

	titleHeight := 0
	if m.title != "" {
		titleHeight = 1
	}

	itemWidth := 0
	for i := range m.options {
		itemWidth = max(itemWidth, lipgloss.Width(m.label(i))+2)
	}
	if m.title != "" {
		itemWidth = max(itemWidth, lipgloss.Width(m.title))
	}

	contentWidth := min(itemWidth, maxContentWidth)
	listHeight := min(len(m.options), maxContentHeight-titleHeight, maxVisibleItems)
	if listHeight <= 0 && len(m.options) > 0 {
		listHeight = 1
	}
	contentHeight := titleHeight + listHeight
	if contentWidth <= 0 || contentHeight <= 0 {
		return
	}

	frame := box.Center(contentWidth+2, contentHeight+2)
	if frame.R.Dx() <= 0 || frame.R.Dy() <= 0 {
		return
	}

	dl.AddBackdrop(box.R, render.ZMenuBorder-1)
	contentBox := frame.Inset(1)
	if contentBox.R.Dx() <= 0 || contentBox.R.Dy() <= 0 {
		return
	}

	borderBase := lipgloss.NewStyle().Width(contentBox.R.Dx()).Height(contentBox.R.Dy()).Render("")
	dl.AddDraw(frame.R, m.styles.border.Render(borderBase), render.ZMenuBorder)

	listBox := contentBox
	if titleHeight > 0 {
		var titleBox layout.Box
		titleBox, listBox = contentBox.CutTop(1)
		dl.AddDraw(titleBox.R, m.styles.title.Render(m.title), render.ZMenuContent)
	}

	rows := listBox.R.Dy()
	if rows <= 0 {
		return
	}
	// keep the highlighted row in view
	if m.selected < m.startLine {
		m.startLine = m.selected
	}
	if m.selected >= m.startLine+rows {
		m.startLine = m.selected - rows + 1
	}
	m.startLine = min(max(m.startLine, 0), max(len(m.options)-rows, 0))

	for row := 0; row < rows; row++ {
		index := m.startLine + row
		if index >= len(m.options) {
			break
		}
		style := m.styles.text
		switch {
		case index == m.selected:
			style = m.styles.selected
		case m.options[index].Disabled:
			style = m.styles.disabled
		}
		rect := layout.Rect(listBox.R.Min.X, listBox.R.Min.Y+row, listBox.R.Dx(), 1)
		line := style.Padding(0, 1).Width(rect.Dx()).MaxWidth(rect.Dx()).Render(m.label(index))
		dl.AddDraw(rect, line, render.ZMenuContent)
		dl.AddInteraction(rect, itemClickMsg{Index: index}, render.InteractionClick, render.ZMenuContent)
	}
	dl.AddInteraction(listBox.R, itemScrollMsg{}, render.InteractionScroll, render.ZMenuContent)
}

func newCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
