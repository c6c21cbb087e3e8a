package render

import (
	"github.com/idursun/scened/internal/ui/layout"
)

// Draw represents a content rendering operation.
// Draws are rendered first, sorted by Z-index (lower values render first).
type Draw struct {
	Rect    layout.Rectangle // The area to draw in
	Content string           // Rendered ANSI string (from lipgloss, etc.)
	Z       int              // Z-index for layering (lower = back, higher = front)
}

// Z bands used by the editor. The canvas owns everything below ZPanel.
const (
	ZCanvas      = 0
	ZSelection   = 900
	ZPanel       = 1000
	ZStatus      = 1100
	ZMenuBorder  = 2000
	ZMenuContent = 2001
)
