package project

import (
	"slices"
)

// Instance is one placed occurrence of an object in a layout.
type Instance struct {
	ObjectName string
	layer      string
	x, y       float64
	zOrder     int

	customSize   bool
	customWidth  float64
	customHeight float64
}

func NewInstance(objectName, layer string, x, y float64) *Instance {
	return &Instance{ObjectName: objectName, layer: layer, x: x, y: y}
}

// Layer is the name of the layer the instance is drawn in.
func (i *Instance) Layer() string { return i.layer }

func (i *Instance) SetLayer(name string) { i.layer = name }

func (i *Instance) X() float64 { return i.x }

func (i *Instance) Y() float64 { return i.y }

func (i *Instance) SetPosition(x, y float64) {
	i.x = x
	i.y = y
}

// MoveBy offsets the instance position.
func (i *Instance) MoveBy(dx, dy float64) {
	i.x += dx
	i.y += dy
}

// ZOrder orders instances within their layer.
func (i *Instance) ZOrder() int { return i.zOrder }

func (i *Instance) SetZOrder(z int) { i.zOrder = z }

func (i *Instance) HasCustomSize() bool { return i.customSize }

func (i *Instance) CustomWidth() float64 { return i.customWidth }

func (i *Instance) CustomHeight() float64 { return i.customHeight }

func (i *Instance) SetCustomSize(width, height float64) {
	i.customSize = true
	i.customWidth = width
	i.customHeight = height
}

func (i *Instance) ClearCustomSize() {
	i.customSize = false
}

// InstancesContainer holds the instances placed in a layout.
type InstancesContainer struct {
	instances []*Instance
}

func NewInstancesContainer() *InstancesContainer {
	return &InstancesContainer{}
}

func (c *InstancesContainer) Add(inst *Instance) {
	c.instances = append(c.instances, inst)
}

func (c *InstancesContainer) Remove(inst *Instance) bool {
	i := slices.Index(c.instances, inst)
	if i < 0 {
		return false
	}
	c.instances = slices.Delete(c.instances, i, i+1)
	return true
}

func (c *InstancesContainer) Count() int {
	return len(c.instances)
}

func (c *InstancesContainer) All() []*Instance {
	return slices.Clone(c.instances)
}

// OnLayer returns the instances of a layer ordered by z-order, insertion
// order breaking ties.
func (c *InstancesContainer) OnLayer(layer string) []*Instance {
	var out []*Instance
	for _, inst := range c.instances {
		if inst.layer == layer {
			out = append(out, inst)
		}
	}
	slices.SortStableFunc(out, func(a, b *Instance) int { return a.zOrder - b.zOrder })
	return out
}

// MoveInstancesToLayer reassigns every instance of one layer to another and
// returns how many moved.
func (c *InstancesContainer) MoveInstancesToLayer(from, to string) int {
	n := 0
	for _, inst := range c.instances {
		if inst.layer == from {
			inst.layer = to
			n++
		}
	}
	return n
}

// RemoveInstancesOnLayer deletes every instance of a layer and returns how
// many were removed.
func (c *InstancesContainer) RemoveInstancesOnLayer(layer string) int {
	before := len(c.instances)
	c.instances = slices.DeleteFunc(c.instances, func(inst *Instance) bool { return inst.layer == layer })
	return before - len(c.instances)
}

// InstancesOf returns every instance of an object.
func (c *InstancesContainer) InstancesOf(objectName string) []*Instance {
	var out []*Instance
	for _, inst := range c.instances {
		if inst.ObjectName == objectName {
			out = append(out, inst)
		}
	}
	return out
}
