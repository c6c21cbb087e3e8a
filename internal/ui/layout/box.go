package layout

import "image"

// Rectangle is a cell-space rectangle. Min is inclusive, Max exclusive.
type Rectangle = image.Rectangle

// Position is a cell-space point.
type Position = image.Point

// Rect returns the rectangle at (x, y) with the given width and height.
func Rect(x, y, width, height int) Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// Pos returns the point (x, y).
func Pos(x, y int) Position {
	return image.Pt(x, y)
}

// Box is a region of the screen that can be carved into smaller regions.
type Box struct {
	R Rectangle
}

func NewBox(r Rectangle) Box {
	return Box{R: r.Canon()}
}

// CutTop splits n rows off the top of the box.
func (b Box) CutTop(n int) (top Box, rest Box) {
	n = clampInt(n, 0, b.R.Dy())
	top = Box{R: image.Rect(b.R.Min.X, b.R.Min.Y, b.R.Max.X, b.R.Min.Y+n)}
	rest = Box{R: image.Rect(b.R.Min.X, b.R.Min.Y+n, b.R.Max.X, b.R.Max.Y)}
	return top, rest
}

// CutBottom splits n rows off the bottom of the box.
func (b Box) CutBottom(n int) (rest Box, bottom Box) {
	n = clampInt(n, 0, b.R.Dy())
	rest = Box{R: image.Rect(b.R.Min.X, b.R.Min.Y, b.R.Max.X, b.R.Max.Y-n)}
	bottom = Box{R: image.Rect(b.R.Min.X, b.R.Max.Y-n, b.R.Max.X, b.R.Max.Y)}
	return rest, bottom
}

// Inset shrinks the box by n cells on every side.
func (b Box) Inset(n int) Box {
	if b.R.Dx() < 2*n || b.R.Dy() < 2*n {
		return Box{R: image.Rectangle{Min: b.R.Min, Max: b.R.Min}}
	}
	return Box{R: image.Rect(b.R.Min.X+n, b.R.Min.Y+n, b.R.Max.X-n, b.R.Max.Y-n)}
}

// Center returns a box of at most width x height centered inside b.
func (b Box) Center(width, height int) Box {
	width = clampInt(width, 0, b.R.Dx())
	height = clampInt(height, 0, b.R.Dy())
	x := b.R.Min.X + (b.R.Dx()-width)/2
	y := b.R.Min.Y + (b.R.Dy()-height)/2
	return Box{R: Rect(x, y, width, height)}
}

type constraintKind int

const (
	kindFixed constraintKind = iota
	kindPercent
	kindFill
)

// Constraint describes how much of an axis a child box receives.
type Constraint struct {
	kind  constraintKind
	value float64
}

// Fixed takes exactly n cells.
func Fixed(n int) Constraint { return Constraint{kind: kindFixed, value: float64(n)} }

// Percent takes a percentage of the whole axis.
func Percent(p float64) Constraint { return Constraint{kind: kindPercent, value: p} }

// Fill shares whatever is left, proportionally to weight.
func Fill(weight int) Constraint { return Constraint{kind: kindFill, value: float64(weight)} }

// V stacks boxes top to bottom.
func (b Box) V(constraints ...Constraint) []Box {
	sizes := solve(b.R.Dy(), constraints)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = Box{R: image.Rect(b.R.Min.X, y, b.R.Max.X, y+size)}
		y += size
	}
	return boxes
}

// H lays boxes out left to right.
func (b Box) H(constraints ...Constraint) []Box {
	sizes := solve(b.R.Dx(), constraints)
	boxes := make([]Box, len(sizes))
	x := b.R.Min.X
	for i, size := range sizes {
		boxes[i] = Box{R: image.Rect(x, b.R.Min.Y, x+size, b.R.Max.Y)}
		x += size
	}
	return boxes
}

func solve(total int, constraints []Constraint) []int {
	sizes := make([]int, len(constraints))
	remaining := total
	fillWeight := 0.0
	for i, c := range constraints {
		switch c.kind {
		case kindFixed:
			sizes[i] = clampInt(int(c.value), 0, remaining)
			remaining -= sizes[i]
		case kindPercent:
			sizes[i] = clampInt(int(float64(total)*c.value/100), 0, remaining)
			remaining -= sizes[i]
		case kindFill:
			fillWeight += c.value
		}
	}
	if fillWeight <= 0 {
		return sizes
	}

	lastFill := -1
	available := remaining
	for i, c := range constraints {
		if c.kind != kindFill {
			continue
		}
		sizes[i] = int(float64(available) * c.value / fillWeight)
		remaining -= sizes[i]
		lastFill = i
	}
	// rounding leftovers go to the last fill
	if lastFill >= 0 {
		sizes[lastFill] += remaining
	}
	return sizes
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
