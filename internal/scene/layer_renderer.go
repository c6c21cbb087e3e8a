package scene

import (
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scenegraph"
)

// LayerRenderer draws the instances of one layer into its own container and
// answers geometry questions about them.
type LayerRenderer interface {
	// Drawable is the container the renderer draws into. The scene adds it to
	// its root container and controls its z-index.
	Drawable() *scenegraph.Container
	// SetLayer rebinds the renderer to the current value of its layer.
	SetLayer(layer *project.Layer)
	// Render syncs the drawable with the instances currently on the layer.
	Render()

	InstanceLeft(inst *project.Instance) float64
	InstanceTop(inst *project.Instance) float64
	InstanceWidth(inst *project.Instance) float64
	InstanceHeight(inst *project.Instance) float64

	// ResetInstanceRenderersFor drops cached drawables of instances of the
	// named object so they get rebuilt on the next Render.
	ResetInstanceRenderersFor(objectName string)
	// Destroy releases the drawable and everything under it.
	Destroy()
}

// InteractionCallbacks are the editor's reactions to pointer input on an
// instance. Any of them may be nil.
type InteractionCallbacks struct {
	OnClick       func(inst *project.Instance)
	OnDoubleClick func(inst *project.Instance)
	OnOver        func(inst *project.Instance)
	OnOut         func(inst *project.Instance)
	// OnMove reports a drag of inst by (dx, dy) scene units.
	OnMove    func(inst *project.Instance, dx, dy float64)
	OnMoveEnd func()
	OnDown    func(inst *project.Instance)
}

// InstanceTarget is the interaction message attached to an instance's
// drawable. The host routes pointer input on the canvas through it, which
// ends up in the InteractionCallbacks the layer renderer was built with.
type InstanceTarget interface {
	Instance() *project.Instance
	Down()
	Click()
	DoubleClick()
	Over()
	Out()
	Move(dx, dy float64)
	MoveEnd()
}

// InstancePress is what a press on an instance's drawable resolves to: the
// target under the pointer and the cell the press landed on. Drags measure
// their first step from that cell.
type InstancePress struct {
	Target InstanceTarget
	X, Y   int
}

// LayerList is the part of a layout the scene reads: its layers, back to front.
type LayerList interface {
	Layers() []*project.Layer
}

// LayerRendererOptions is everything a layer renderer is built from.
type LayerRendererOptions struct {
	Project   *project.Project
	Layout    LayerList
	Layer     *project.Layer
	Instances *project.InstancesContainer
	View      *project.ViewState
	Callbacks InteractionCallbacks
}

// LayerRendererFactory builds the renderer for a layer seen for the first time.
type LayerRendererFactory func(opts LayerRendererOptions) LayerRenderer
