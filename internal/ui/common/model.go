package common

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// ImmediateModel is a model that paints itself into a display context every
// frame instead of returning a string view.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}
