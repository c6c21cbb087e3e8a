package scene

import "github.com/idursun/scened/internal/project"

// Rect is an instance bounding box in scene units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// InstanceMeasurer answers bounding box questions about instances. Instances
// can exist before their layer has been rendered, so every query falls back
// to the instance's own data when no layer renderer is available.
type InstanceMeasurer struct {
	scene *Renderer
}

func (m *InstanceMeasurer) layerRenderer(inst *project.Instance) (LayerRenderer, bool) {
	return m.scene.LayerRenderer(inst.Layer())
}

func (m *InstanceMeasurer) Left(inst *project.Instance) float64 {
	if lr, ok := m.layerRenderer(inst); ok {
		return lr.InstanceLeft(inst)
	}
	return inst.X()
}

func (m *InstanceMeasurer) Top(inst *project.Instance) float64 {
	if lr, ok := m.layerRenderer(inst); ok {
		return lr.InstanceTop(inst)
	}
	return inst.Y()
}

func (m *InstanceMeasurer) Width(inst *project.Instance) float64 {
	if inst.HasCustomSize() {
		return inst.CustomWidth()
	}
	if lr, ok := m.layerRenderer(inst); ok {
		return lr.InstanceWidth(inst)
	}
	return 0
}

func (m *InstanceMeasurer) Height(inst *project.Instance) float64 {
	if inst.HasCustomSize() {
		return inst.CustomHeight()
	}
	if lr, ok := m.layerRenderer(inst); ok {
		return lr.InstanceHeight(inst)
	}
	return 0
}

func (m *InstanceMeasurer) Rect(inst *project.Instance) Rect {
	return Rect{
		X:      m.Left(inst),
		Y:      m.Top(inst),
		Width:  m.Width(inst),
		Height: m.Height(inst),
	}
}
