// Package layerrender draws the instances of one layer as boxes of cells.
package layerrender

import (
	"math"

	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scene"
	"github.com/idursun/scened/internal/scenegraph"
	"github.com/idursun/scened/internal/ui/layout"
	"github.com/idursun/scened/internal/ui/render"
)

// Styles decides how instance boxes look.
type Styles struct {
	// Instance is used for objects without a style of their own.
	Instance lipgloss.Style
	// Missing is used for instances whose object definition does not exist.
	Missing lipgloss.Style
	// ForObject, when set, returns the style of an object's instances.
	ForObject func(obj *project.Object) lipgloss.Style
}

func (s Styles) styleFor(obj *project.Object) lipgloss.Style {
	if obj == nil {
		return s.Missing
	}
	if s.ForObject != nil {
		return s.ForObject(obj)
	}
	return s.Instance
}

type instanceBox struct {
	box  *scenegraph.Box
	pass uint64
}

// Renderer implements scene.LayerRenderer.
type Renderer struct {
	project   *project.Project
	instances *project.InstancesContainer
	view      *project.ViewState
	layer     *project.Layer
	callbacks scene.InteractionCallbacks
	styles    Styles

	container *scenegraph.Container
	boxes     map[*project.Instance]*instanceBox
	pass      uint64
	destroyed bool
}

var _ scene.LayerRenderer = (*Renderer)(nil)

func New(opts scene.LayerRendererOptions, styles Styles) *Renderer {
	return &Renderer{
		project:   opts.Project,
		instances: opts.Instances,
		view:      opts.View,
		layer:     opts.Layer,
		callbacks: opts.Callbacks,
		styles:    styles,
		container: scenegraph.NewContainer(opts.Layer.Name()),
		boxes:     make(map[*project.Instance]*instanceBox),
	}
}

// Factory returns a scene.LayerRendererFactory building Renderers with styles.
func Factory(styles Styles) scene.LayerRendererFactory {
	return func(opts scene.LayerRendererOptions) scene.LayerRenderer {
		return New(opts, styles)
	}
}

func (r *Renderer) Drawable() *scenegraph.Container {
	return r.container
}

func (r *Renderer) SetLayer(layer *project.Layer) {
	r.layer = layer
}

// Render syncs one box per instance of the layer: new instances get a box,
// existing boxes follow their instance, and boxes of instances that left the
// layer are destroyed.
func (r *Renderer) Render() {
	if r.destroyed {
		return
	}
	r.container.SetVisible(r.layer.Visible())
	r.pass++

	for i, inst := range r.instances.OnLayer(r.layer.Name()) {
		ib, ok := r.boxes[inst]
		if !ok {
			ib = &instanceBox{box: r.newBox(inst)}
			r.boxes[inst] = ib
			r.container.AddChild(ib.box)
		}
		ib.pass = r.pass
		ib.box.Rect = r.cellRect(inst)
		ib.box.SetZIndex(i)
	}

	r.container.SortChildren()

	for inst, ib := range r.boxes {
		if ib.pass != r.pass {
			ib.box.Destroy()
			delete(r.boxes, inst)
		}
	}
}

// newBox builds the drawable of an instance. Style and label are fixed here;
// ResetInstanceRenderersFor is how they get refreshed.
func (r *Renderer) newBox(inst *project.Instance) *scenegraph.Box {
	obj, _ := r.project.Object(inst.ObjectName)
	box := scenegraph.NewBox()
	box.Style = r.styles.styleFor(obj)
	box.Label = inst.ObjectName
	if obj != nil && obj.Glyph != "" {
		box.Fill = []rune(obj.Glyph)[0]
	}
	box.Msg = &target{inst: inst, callbacks: &r.callbacks}
	box.Interactions = render.InteractionClick | render.InteractionDrag | render.InteractionHover
	return box
}

func (r *Renderer) cellRect(inst *project.Instance) layout.Rectangle {
	return CellRect(r.view, r.InstanceLeft(inst), r.InstanceTop(inst), r.InstanceWidth(inst), r.InstanceHeight(inst))
}

// CellRect converts a scene-space rectangle to the canvas cells it touches.
// Anything with a positive size covers at least one cell.
func CellRect(view *project.ViewState, x, y, width, height float64) layout.Rectangle {
	cx, cy := view.ToCanvas(x, y)
	w := width * view.Zoom
	h := height * view.Zoom
	if w <= 0 || h <= 0 {
		return layout.Rectangle{}
	}
	x0, y0 := int(math.Floor(cx)), int(math.Floor(cy))
	x1, y1 := int(math.Ceil(cx+w)), int(math.Ceil(cy+h))
	return layout.Rectangle{
		Min: layout.Pos(x0, y0),
		Max: layout.Pos(max(x1, x0+1), max(y1, y0+1)),
	}
}

func (r *Renderer) object(inst *project.Instance) (*project.Object, bool) {
	return r.project.Object(inst.ObjectName)
}

// origin returns the instance's origin offset, scaled with its custom size.
func (r *Renderer) origin(inst *project.Instance) (float64, float64) {
	obj, ok := r.object(inst)
	if !ok {
		return 0, 0
	}
	ox, oy := obj.OriginX, obj.OriginY
	if inst.HasCustomSize() {
		if obj.Width > 0 {
			ox *= inst.CustomWidth() / obj.Width
		}
		if obj.Height > 0 {
			oy *= inst.CustomHeight() / obj.Height
		}
	}
	return ox, oy
}

func (r *Renderer) InstanceLeft(inst *project.Instance) float64 {
	ox, _ := r.origin(inst)
	return inst.X() - ox
}

func (r *Renderer) InstanceTop(inst *project.Instance) float64 {
	_, oy := r.origin(inst)
	return inst.Y() - oy
}

func (r *Renderer) InstanceWidth(inst *project.Instance) float64 {
	if inst.HasCustomSize() {
		return inst.CustomWidth()
	}
	if obj, ok := r.object(inst); ok {
		return obj.Width
	}
	return 0
}

func (r *Renderer) InstanceHeight(inst *project.Instance) float64 {
	if inst.HasCustomSize() {
		return inst.CustomHeight()
	}
	if obj, ok := r.object(inst); ok {
		return obj.Height
	}
	return 0
}

func (r *Renderer) ResetInstanceRenderersFor(objectName string) {
	for inst, ib := range r.boxes {
		if inst.ObjectName == objectName {
			ib.box.Destroy()
			delete(r.boxes, inst)
		}
	}
}

// Destroy releases the container and every instance box.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.container.Destroy()
	clear(r.boxes)
}
