package project

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed sample.toml
var sampleScene []byte

// ErrInvalidScene is wrapped by every validation error Parse returns.
var ErrInvalidScene = errors.New("invalid scene")

// Scene bundles everything the editor needs to show one layout.
type Scene struct {
	Project   *Project
	Layout    *Layout
	Instances *InstancesContainer
	View      *ViewState

	// ZoomSet reports whether the scene file chose the starting zoom.
	ZoomSet bool
}

type sceneFile struct {
	Project   string         `toml:"project"`
	Layout    layoutFile     `toml:"layout"`
	Objects   []objectFile   `toml:"objects"`
	Instances []instanceFile `toml:"instances"`
	Camera    *cameraFile    `toml:"camera"`
}

type layoutFile struct {
	Name   string      `toml:"name"`
	Layers []layerFile `toml:"layers"`
}

type layerFile struct {
	Name   string `toml:"name"`
	Hidden bool   `toml:"hidden"`
}

type objectFile struct {
	Name    string  `toml:"name"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`
	Glyph   string  `toml:"glyph"`
	Color   string  `toml:"color"`
}

type instanceFile struct {
	Object string   `toml:"object"`
	Layer  string   `toml:"layer"`
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
	Z      int      `toml:"z"`
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`
}

type cameraFile struct {
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Zoom float64 `toml:"zoom"`
}

// LoadFile reads a scene description from a TOML file.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %q: %w", path, err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scene %q: %w", path, err)
	}
	return scene, nil
}

// Sample returns the scene bundled with the binary.
func Sample() (*Scene, error) {
	return Parse(sampleScene)
}

// Parse builds a Scene from its TOML description. Instances must refer to
// declared objects and layers.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, err
	}

	proj := NewProject(file.Project)
	for _, o := range file.Objects {
		err := proj.AddObject(&Object{
			Name:    o.Name,
			Width:   o.Width,
			Height:  o.Height,
			OriginX: o.OriginX,
			OriginY: o.OriginY,
			Glyph:   o.Glyph,
			Color:   o.Color,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	}

	layout := NewLayout(file.Layout.Name)
	for _, l := range file.Layout.Layers {
		layer := NewLayer(l.Name)
		layer.SetVisible(!l.Hidden)
		if err := layout.AddLayer(layer); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	}

	instances := NewInstancesContainer()
	for i, in := range file.Instances {
		if _, ok := proj.Object(in.Object); !ok {
			return nil, fmt.Errorf("%w: instance %d refers to unknown object %q", ErrInvalidScene, i, in.Object)
		}
		if _, ok := layout.Layer(in.Layer); !ok {
			return nil, fmt.Errorf("%w: instance %d refers to unknown layer %q", ErrInvalidScene, i, in.Layer)
		}
		inst := NewInstance(in.Object, in.Layer, in.X, in.Y)
		inst.SetZOrder(in.Z)
		if in.Width != nil || in.Height != nil {
			obj, _ := proj.Object(in.Object)
			w, h := obj.Width, obj.Height
			if in.Width != nil {
				w = *in.Width
			}
			if in.Height != nil {
				h = *in.Height
			}
			inst.SetCustomSize(w, h)
		}
		instances.Add(inst)
	}

	view := NewViewState()
	zoomSet := false
	if file.Camera != nil {
		view.OffsetX = file.Camera.X
		view.OffsetY = file.Camera.Y
		if file.Camera.Zoom != 0 {
			view.SetZoom(file.Camera.Zoom)
			zoomSet = true
		}
	}

	return &Scene{
		Project:   proj,
		Layout:    layout,
		Instances: instances,
		View:      view,
		ZoomSet:   zoomSet,
	}, nil
}
