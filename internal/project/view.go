package project

import "math"

const (
	MinZoom = 0.25
	MaxZoom = 8
)

// ViewState is the editor camera. Zoom is canvas cells per scene unit.
type ViewState struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

func NewViewState() *ViewState {
	return &ViewState{Zoom: 1}
}

// ToCanvas converts scene coordinates to canvas cells.
func (v *ViewState) ToCanvas(x, y float64) (float64, float64) {
	return (x - v.OffsetX) * v.Zoom, (y - v.OffsetY) * v.Zoom
}

// FromCanvas converts canvas cells back to scene coordinates.
func (v *ViewState) FromCanvas(cx, cy float64) (float64, float64) {
	return cx/v.Zoom + v.OffsetX, cy/v.Zoom + v.OffsetY
}

// ScaleToScene converts a distance in cells to scene units.
func (v *ViewState) ScaleToScene(d float64) float64 {
	return d / v.Zoom
}

// Pan moves the camera by a distance in scene units.
func (v *ViewState) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

func (v *ViewState) SetZoom(zoom float64) {
	v.Zoom = math.Min(MaxZoom, math.Max(MinZoom, zoom))
}

func (v *ViewState) ZoomBy(factor float64) {
	v.SetZoom(v.Zoom * factor)
}
