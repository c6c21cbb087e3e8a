package status

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/common"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

// Info is the editor state the status line describes.
type Info struct {
	Layer       string
	LayerHidden bool
	Instance    string
	Zoom        float64
}

// Hint is a key and what it does.
type Hint struct {
	Key  string
	Desc string
}

type styles struct {
	text     lipgloss.Style
	shortcut lipgloss.Style
	error    lipgloss.Style
}

type Model struct {
	info    Info
	hints   []Hint
	message string
	isError bool
	styles  styles
}

func New(hints []Hint) *Model {
	return &Model{
		hints: hints,
		styles: styles{
			text:     common.DefaultPalette.Get("status"),
			shortcut: common.DefaultPalette.Get("status key"),
			error:    common.DefaultPalette.Get("status error"),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) SetInfo(info Info) {
	m.info = info
}

// SetMessage shows text until the next message replaces it.
func (m *Model) SetMessage(text string) {
	m.message = text
	m.isError = false
}

// SetError shows err. A nil error clears the current message.
func (m *Model) SetError(err error) {
	if err == nil {
		m.message = ""
		m.isError = false
		return
	}
	m.message = err.Error()
	m.isError = true
}

func (m *Model) Message() string {
	return m.message
}

func (m *Model) IsError() bool {
	return m.isError
}

func (m *Model) describe() string {
	var parts []string
	if m.info.Layer != "" {
		layer := "layer " + m.info.Layer
		if m.info.LayerHidden {
			layer += " (hidden)"
		}
		parts = append(parts, layer)
	}
	if m.info.Instance != "" {
		parts = append(parts, "selected "+m.info.Instance)
	}
	parts = append(parts, fmt.Sprintf("zoom %gx", m.info.Zoom))
	return strings.Join(parts, " | ")
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if box.R.Dx() <= 0 || box.R.Dy() <= 0 {
		return
	}
	dl.AddFill(box.R, ' ', m.styles.text, render.ZStatus)

	tb := dl.Text(box.R.Min.X, box.R.Min.Y, render.ZStatus).Clip(box.R.Max.X)
	tb.Styled(" "+m.describe()+" ", m.styles.text)
	if m.message != "" {
		style := m.styles.text
		if m.isError {
			style = m.styles.error
		}
		tb.Styled(" "+m.message+" ", style)
	} else {
		for _, hint := range m.hints {
			tb.Styled(" "+hint.Key, m.styles.shortcut)
			tb.Styled(" "+hint.Desc, m.styles.text)
		}
	}
	tb.Done()
}
