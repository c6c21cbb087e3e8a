// Package project holds the editor's data model: object definitions, layouts
// with their ordered layers, placed instances and the camera.
package project

import (
	"fmt"
	"slices"
)

// Object is an object definition instances are created from.
type Object struct {
	Name string
	// Default size in scene units, used when an instance has no custom size.
	Width  float64
	Height float64
	// Origin is the point of the object that sits at the instance position.
	OriginX float64
	OriginY float64
	Glyph   string
	Color   string
}

type Project struct {
	Name    string
	objects map[string]*Object
	order   []string
}

func NewProject(name string) *Project {
	return &Project{Name: name, objects: make(map[string]*Object)}
}

// AddObject registers obj. Object names are unique within a project.
func (p *Project) AddObject(obj *Object) error {
	if obj == nil || obj.Name == "" {
		return fmt.Errorf("object name is required")
	}
	if _, ok := p.objects[obj.Name]; ok {
		return fmt.Errorf("object %q already exists", obj.Name)
	}
	p.objects[obj.Name] = obj
	p.order = append(p.order, obj.Name)
	return nil
}

func (p *Project) Object(name string) (*Object, bool) {
	obj, ok := p.objects[name]
	return obj, ok
}

// Objects returns the object definitions in the order they were added.
func (p *Project) Objects() []*Object {
	out := make([]*Object, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.objects[name])
	}
	return out
}

// RemoveObject drops the definition. Instances referring to it are left alone.
func (p *Project) RemoveObject(name string) bool {
	if _, ok := p.objects[name]; !ok {
		return false
	}
	delete(p.objects, name)
	p.order = slices.DeleteFunc(p.order, func(n string) bool { return n == name })
	return true
}
