package ui

import (
	"charm.land/bubbles/v2/key"
	"github.com/idursun/scened/internal/ui/status"
)

type keyMap struct {
	PanLeft     key.Binding
	PanRight    key.Binding
	PanUp       key.Binding
	PanDown     key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	NextLayer   key.Binding
	PrevLayer   key.Binding
	ToggleLayer key.Binding
	Deselect    key.Binding
	Commands    key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	PanLeft:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←↑↓→", "pan")),
	PanRight:    key.NewBinding(key.WithKeys("right", "l")),
	PanUp:       key.NewBinding(key.WithKeys("up", "k")),
	PanDown:     key.NewBinding(key.WithKeys("down", "j")),
	ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
	ZoomOut:     key.NewBinding(key.WithKeys("-", "_")),
	NextLayer:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "layer")),
	PrevLayer:   key.NewBinding(key.WithKeys("shift+tab")),
	ToggleLayer: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "show/hide")),
	Deselect:    key.NewBinding(key.WithKeys("esc")),
	Commands:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// hints returns the status line help of every binding that has one.
func (k keyMap) hints() []status.Hint {
	var out []status.Hint
	for _, b := range []key.Binding{k.PanLeft, k.ZoomIn, k.NextLayer, k.ToggleLayer, k.Commands, k.Quit} {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, status.Hint{Key: h.Key, Desc: h.Desc})
	}
	return out
}
