package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scene"
	"github.com/idursun/scened/internal/scene/layerrender"
	"github.com/idursun/scened/internal/scenegraph"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// splitDragMsg starts dragging the separator between canvas and panel.
type splitDragMsg struct {
	X, Y int
}

func (m splitDragMsg) SetDragStart(x, y int) tea.Msg {
	m.X, m.Y = x, y
	return m
}

type canvasClickMsg struct{}

type canvasScrollMsg struct {
	Delta      int
	Horizontal bool
}

func (m canvasScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.Delta = delta
	m.Horizontal = horizontal
	return m
}

// pointerState tracks a press on an instance until it is released, and the
// last click so a second one can become a double click.
type pointerState struct {
	pressed     scene.InstanceTarget
	last        layout.Position
	moved       bool
	hover       scene.InstanceTarget
	lastClick   *project.Instance
	lastClickAt time.Time
}

func (m *Model) paintCanvas(dl *render.DisplayContext) {
	canvas := m.canvasBox.R
	if canvas.Empty() {
		return
	}
	dl.AddFill(canvas, ' ', m.styles.canvas, render.ZCanvas)
	dl.AddInteraction(canvas, canvasClickMsg{}, render.InteractionClick, render.ZCanvas)
	dl.AddInteraction(canvas, canvasScrollMsg{}, render.InteractionScroll, render.ZCanvas)

	scenegraph.PaintAt(m.renderer.RootContainer(), dl, canvas, canvas.Min, render.ZCanvas+1)

	if m.hovered != nil && m.hovered != m.selected {
		if r := m.instanceRect(m.hovered).Intersect(canvas); !r.Empty() {
			dl.AddHighlight(r, m.styles.hover, render.ZSelection)
		}
	}
	if m.selected != nil {
		if r := m.instanceRect(m.selected); !r.Intersect(canvas).Empty() {
			dl.AddHandles(r.Intersect(canvas), m.styles.selection, render.ZSelection)
		}
	}
}

// instanceRect is the screen rectangle of an instance's bounding box.
func (m *Model) instanceRect(inst *project.Instance) layout.Rectangle {
	r := m.renderer.InstanceMeasurer().Rect(inst)
	return layerrender.CellRect(m.scene.View, r.X, r.Y, r.Width, r.Height).Add(m.canvasBox.R.Min)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mouse := msg.Mouse()
	switch msg.(type) {
	case tea.MouseClickMsg:
		if m.displayContext == nil {
			return nil
		}
		routed, handled := m.displayContext.ProcessMouseEvent(msg)
		if !handled || routed == nil {
			return nil
		}
		if press, ok := routed.(scene.InstancePress); ok {
			m.pointer.pressed = press.Target
			m.pointer.last = layout.Pos(press.X, press.Y)
			m.pointer.moved = false
			press.Target.Down()
			return nil
		}
		return m.Update(routed)

	case tea.MouseWheelMsg:
		if m.displayContext == nil {
			return nil
		}
		if routed, handled := m.displayContext.ProcessMouseEvent(msg); handled && routed != nil {
			return m.Update(routed)
		}
		return nil

	case tea.MouseMotionMsg:
		if m.splitDragging {
			m.split.DragTo(m.contentBox, mouse.X, mouse.Y)
			return nil
		}
		if t := m.pointer.pressed; t != nil {
			dx := mouse.X - m.pointer.last.X
			dy := mouse.Y - m.pointer.last.Y
			if dx != 0 || dy != 0 {
				m.pointer.last = layout.Pos(mouse.X, mouse.Y)
				m.pointer.moved = true
				t.Move(m.scene.View.ScaleToScene(float64(dx)), m.scene.View.ScaleToScene(float64(dy)))
			}
			return nil
		}
		m.updateHover(mouse.X, mouse.Y)
		return nil

	case tea.MouseReleaseMsg:
		m.splitDragging = false
		t := m.pointer.pressed
		if t == nil {
			return nil
		}
		m.pointer.pressed = nil
		if m.pointer.moved {
			t.MoveEnd()
			return nil
		}
		now := m.now()
		doubleClick := time.Duration(m.config.UI.DoubleClickMs) * time.Millisecond
		if m.pointer.lastClick == t.Instance() && now.Sub(m.pointer.lastClickAt) <= doubleClick {
			m.pointer.lastClick = nil
			t.DoubleClick()
			return nil
		}
		m.pointer.lastClick = t.Instance()
		m.pointer.lastClickAt = now
		t.Click()
	}
	return nil
}

// updateHover sends Out to the instance the pointer left and Over to the one
// it entered.
func (m *Model) updateHover(x, y int) {
	var next scene.InstanceTarget
	if m.displayContext != nil {
		if op, ok := m.displayContext.HitTest(x, y, render.InteractionHover); ok {
			next, _ = op.Msg.(scene.InstanceTarget)
		}
	}
	prev := m.pointer.hover
	if prev == next {
		return
	}
	if prev != nil {
		prev.Out()
	}
	m.pointer.hover = next
	if next != nil {
		next.Over()
	}
}

// callbacks is built once and handed to every layer renderer.
func (m *Model) callbacks() scene.InteractionCallbacks {
	return scene.InteractionCallbacks{
		OnDown: func(inst *project.Instance) {
			m.selected = inst
			m.selectLayer(inst.Layer())
		},
		OnClick: func(inst *project.Instance) {
			m.status.SetMessage(fmt.Sprintf("%s at (%g, %g)", inst.ObjectName, inst.X(), inst.Y()))
		},
		OnDoubleClick: func(inst *project.Instance) {
			m.focus(inst)
		},
		OnOver: func(inst *project.Instance) {
			m.hovered = inst
		},
		OnOut: func(inst *project.Instance) {
			if m.hovered == inst {
				m.hovered = nil
			}
		},
		OnMove: func(inst *project.Instance, dx, dy float64) {
			inst.MoveBy(dx, dy)
		},
		OnMoveEnd: func() {
			if m.selected == nil {
				return
			}
			m.status.SetMessage(fmt.Sprintf("moved %s to (%g, %g)", m.selected.ObjectName, m.selected.X(), m.selected.Y()))
			m.log.Info("instance moved", "object", m.selected.ObjectName, "x", m.selected.X(), "y", m.selected.Y())
		},
	}
}

// focus centres the camera on inst.
func (m *Model) focus(inst *project.Instance) {
	r := m.renderer.InstanceMeasurer().Rect(inst)
	view := m.scene.View
	halfW := view.ScaleToScene(float64(m.canvasBox.R.Dx()) / 2)
	halfH := view.ScaleToScene(float64(m.canvasBox.R.Dy()) / 2)
	view.OffsetX = r.X + r.Width/2 - halfW
	view.OffsetY = r.Y + r.Height/2 - halfH
}
