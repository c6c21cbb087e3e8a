package project

import (
	"fmt"
	"slices"
)

// Layer is a named drawing bucket. Layouts may replace a Layer with a new
// value carrying the same name, so only the name identifies a layer.
type Layer struct {
	name   string
	hidden bool
}

func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

func (l *Layer) Name() string { return l.name }

func (l *Layer) Visible() bool { return !l.hidden }

func (l *Layer) SetVisible(visible bool) { l.hidden = !visible }

// Layout is a scene: an ordered list of layers, back to front.
type Layout struct {
	Name   string
	layers []*Layer
}

func NewLayout(name string) *Layout {
	return &Layout{Name: name}
}

// Layers returns the layers back to front.
func (l *Layout) Layers() []*Layer {
	return slices.Clone(l.layers)
}

func (l *Layout) LayerCount() int {
	return len(l.layers)
}

func (l *Layout) LayerAt(i int) (*Layer, bool) {
	if i < 0 || i >= len(l.layers) {
		return nil, false
	}
	return l.layers[i], true
}

func (l *Layout) Layer(name string) (*Layer, bool) {
	i := l.LayerPosition(name)
	if i < 0 {
		return nil, false
	}
	return l.layers[i], true
}

// LayerPosition returns the index of the named layer or -1.
func (l *Layout) LayerPosition(name string) int {
	return slices.IndexFunc(l.layers, func(layer *Layer) bool { return layer.name == name })
}

// InsertLayer puts layer at position pos, clamped to the valid range.
// A negative position appends.
func (l *Layout) InsertLayer(layer *Layer, pos int) error {
	if layer == nil || layer.name == "" {
		return fmt.Errorf("layer name is required")
	}
	if l.LayerPosition(layer.name) >= 0 {
		return fmt.Errorf("layer %q already exists", layer.name)
	}
	if pos < 0 || pos > len(l.layers) {
		pos = len(l.layers)
	}
	l.layers = slices.Insert(l.layers, pos, layer)
	return nil
}

func (l *Layout) AddLayer(layer *Layer) error {
	return l.InsertLayer(layer, -1)
}

func (l *Layout) RemoveLayer(name string) bool {
	i := l.LayerPosition(name)
	if i < 0 {
		return false
	}
	l.layers = slices.Delete(l.layers, i, i+1)
	return true
}

// SwapLayers exchanges the layers at positions i and j.
func (l *Layout) SwapLayers(i, j int) bool {
	if i < 0 || j < 0 || i >= len(l.layers) || j >= len(l.layers) {
		return false
	}
	l.layers[i], l.layers[j] = l.layers[j], l.layers[i]
	return true
}

// MoveLayer moves the layer at position from so it ends up at position to.
func (l *Layout) MoveLayer(from, to int) bool {
	if from < 0 || from >= len(l.layers) || to < 0 || to >= len(l.layers) {
		return false
	}
	layer := l.layers[from]
	l.layers = slices.Delete(l.layers, from, from+1)
	l.layers = slices.Insert(l.layers, to, layer)
	return true
}

// ReplaceLayer swaps in a new Layer value for the layer with the same name,
// keeping its position.
func (l *Layout) ReplaceLayer(layer *Layer) bool {
	i := l.LayerPosition(layer.name)
	if i < 0 {
		return false
	}
	l.layers[i] = layer
	return true
}
