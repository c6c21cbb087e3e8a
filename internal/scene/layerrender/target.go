package layerrender

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scene"
	"github.com/idursun/scened/internal/ui/render"
)

// target routes pointer input on an instance box to the callbacks.
type target struct {
	inst      *project.Instance
	callbacks *scene.InteractionCallbacks
}

var (
	_ scene.InstanceTarget    = (*target)(nil)
	_ render.DragStartCarrier = (*target)(nil)
)

func (t *target) Instance() *project.Instance { return t.inst }

// SetDragStart turns a press on the box into a scene.InstancePress.
func (t *target) SetDragStart(x, y int) tea.Msg {
	return scene.InstancePress{Target: t, X: x, Y: y}
}

func (t *target) Down() {
	if t.callbacks.OnDown != nil {
		t.callbacks.OnDown(t.inst)
	}
}

func (t *target) Click() {
	if t.callbacks.OnClick != nil {
		t.callbacks.OnClick(t.inst)
	}
}

func (t *target) DoubleClick() {
	if t.callbacks.OnDoubleClick != nil {
		t.callbacks.OnDoubleClick(t.inst)
	}
}

func (t *target) Over() {
	if t.callbacks.OnOver != nil {
		t.callbacks.OnOver(t.inst)
	}
}

func (t *target) Out() {
	if t.callbacks.OnOut != nil {
		t.callbacks.OnOut(t.inst)
	}
}

func (t *target) Move(dx, dy float64) {
	if t.callbacks.OnMove != nil {
		t.callbacks.OnMove(t.inst, dx, dy)
	}
}

func (t *target) MoveEnd() {
	if t.callbacks.OnMoveEnd != nil {
		t.callbacks.OnMoveEnd()
	}
}
