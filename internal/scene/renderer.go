// Package scene composes per-layer renderers into one drawable tree.
package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scenegraph"
)

// Options configures a Renderer. Every field is required.
type Options struct {
	Project          *project.Project
	Layout           LayerList
	Instances        *project.InstancesContainer
	View             *project.ViewState
	Callbacks        InteractionCallbacks
	NewLayerRenderer LayerRendererFactory
}

func (o Options) validate() error {
	switch {
	case o.Project == nil:
		return errors.New("scene: project is required")
	case o.Layout == nil:
		return errors.New("scene: layout is required")
	case o.Instances == nil:
		return errors.New("scene: instances container is required")
	case o.View == nil:
		return errors.New("scene: view state is required")
	case o.NewLayerRenderer == nil:
		return errors.New("scene: layer renderer factory is required")
	}
	return nil
}

type layerEntry struct {
	renderer LayerRenderer
	// pass is the render pass that last saw the layer.
	pass uint64
}

// Renderer keeps one LayerRenderer per layer of a layout and orders their
// drawables by layer position under a single root container.
//
// Renderer is not safe for concurrent use; Render is meant to be called from
// the UI loop that owns the drawable tree.
type Renderer struct {
	opts      Options
	root      *scenegraph.Container
	entries   map[string]*layerEntry
	pass      uint64
	measurer  *InstanceMeasurer
	destroyed bool
}

func New(opts Options) (*Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		opts:    opts,
		root:    scenegraph.NewContainer("instances"),
		entries: make(map[string]*layerEntry),
	}
	r.measurer = &InstanceMeasurer{scene: r}
	return r, nil
}

// Render reconciles layer renderers with the layout's layers and renders each
// of them. When it returns there is exactly one renderer per layer, their
// drawables are the root's only children, and they are ordered back to front.
//
// A layout reporting the same layer name twice in one pass is a programming
// error and panics.
func (r *Renderer) Render() {
	if r.destroyed {
		panic("scene: Render called on a destroyed renderer")
	}
	r.pass++

	for i, layer := range r.opts.Layout.Layers() {
		name := layer.Name()
		entry, ok := r.entries[name]
		if !ok {
			entry = r.newEntry(layer)
			r.entries[name] = entry
		} else if entry.pass == r.pass {
			panic(fmt.Sprintf("scene: layer %q reported more than once in one pass", name))
		}

		entry.renderer.SetLayer(layer)
		entry.pass = r.pass
		entry.renderer.Drawable().SetZIndex(i)
		entry.renderer.Render()
	}

	r.root.SortChildren()

	for name, entry := range r.entries {
		if entry.pass == r.pass {
			continue
		}
		r.root.RemoveChild(entry.renderer.Drawable())
		entry.renderer.Destroy()
		delete(r.entries, name)
		logger().Debug("layer renderer disposed", slog.String("layer", name))
	}
}

func (r *Renderer) newEntry(layer *project.Layer) *layerEntry {
	lr := r.opts.NewLayerRenderer(LayerRendererOptions{
		Project:   r.opts.Project,
		Layout:    r.opts.Layout,
		Layer:     layer,
		Instances: r.opts.Instances,
		View:      r.opts.View,
		Callbacks: r.opts.Callbacks,
	})
	r.root.AddChild(lr.Drawable())
	logger().Debug("layer renderer created", slog.String("layer", layer.Name()))
	return &layerEntry{renderer: lr}
}

// ResetInstanceRenderersFor asks every layer renderer to rebuild the
// drawables of instances of the named object.
func (r *Renderer) ResetInstanceRenderersFor(objectName string) {
	for _, entry := range r.entries {
		entry.renderer.ResetInstanceRenderersFor(objectName)
	}
}

// RootContainer returns the container holding the layer drawables. The scene
// keeps ownership; callers must not modify or destroy it.
func (r *Renderer) RootContainer() *scenegraph.Container {
	return r.root
}

func (r *Renderer) InstanceMeasurer() *InstanceMeasurer {
	return r.measurer
}

// LayerRenderer returns the renderer currently assigned to a layer name.
func (r *Renderer) LayerRenderer(name string) (LayerRenderer, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return entry.renderer, true
}

// Len is the number of layer renderers alive.
func (r *Renderer) Len() int {
	return len(r.entries)
}

// Destroy releases every layer renderer and then the root container.
// Calling it again does nothing.
func (r *Renderer) Destroy() {
	if r.destroyed {
		logger().Warn("scene renderer destroyed twice")
		return
	}
	r.destroyed = true
	for name, entry := range r.entries {
		entry.renderer.Destroy()
		delete(r.entries, name)
	}
	r.root.Destroy()
}
