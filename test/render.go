// Package test holds helpers shared by rendering tests.
package test

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// RenderImmediate renders an immediate model into a fixed-size buffer.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) string {
	dl := render.NewDisplayContext()
	box := layout.NewBox(layout.Rect(0, 0, width, height))
	model.ViewRect(dl, box)
	return RenderDisplayContext(dl, width, height)
}

// RenderDisplayContext flattens dl into the plain text of a width x height screen.
func RenderDisplayContext(dl *render.DisplayContext, width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}
