package layout

// Split divides a box between a main area and a side panel.
// Percentage is the share of the box given to the panel.
type Split struct {
	Percentage float64
	Vertical   bool // panel below main instead of to its right
	MinPercent float64
	MaxPercent float64
}

func NewSplit(percentage float64, vertical bool) *Split {
	s := &Split{
		Percentage: percentage,
		Vertical:   vertical,
		MinPercent: 10,
		MaxPercent: 90,
	}
	s.clamp()
	return s
}

// Apply returns the main area and the panel area of box.
func (s *Split) Apply(box Box) (main, panel Box) {
	mainPct := 100 - s.Percentage
	if s.Vertical {
		boxes := box.V(Percent(mainPct), Fill(1))
		return boxes[0], boxes[1]
	}
	boxes := box.H(Percent(mainPct), Fill(1))
	return boxes[0], boxes[1]
}

// Separator returns the one cell wide strip between main and panel that
// can be grabbed to resize the split.
func (s *Split) Separator(box Box) Rectangle {
	_, panel := s.Apply(box)
	if s.Vertical {
		return Rect(box.R.Min.X, panel.R.Min.Y, box.R.Dx(), 1)
	}
	return Rect(panel.R.Min.X, box.R.Min.Y, 1, box.R.Dy())
}

// DragTo moves the separator to (x, y) inside box and reports whether the
// percentage changed.
func (s *Split) DragTo(box Box, x, y int) bool {
	old := s.Percentage
	if s.Vertical {
		total := box.R.Dy()
		if total <= 0 {
			return false
		}
		s.Percentage = float64((box.R.Max.Y-y)*100) / float64(total)
	} else {
		total := box.R.Dx()
		if total <= 0 {
			return false
		}
		s.Percentage = float64((box.R.Max.X-x)*100) / float64(total)
	}
	s.clamp()
	return s.Percentage != old
}

func (s *Split) Expand(delta float64) {
	s.Percentage += delta
	s.clamp()
}

func (s *Split) Shrink(delta float64) {
	s.Percentage -= delta
	s.clamp()
}

func (s *Split) clamp() {
	if s.Percentage < s.MinPercent {
		s.Percentage = s.MinPercent
	}
	if s.Percentage > s.MaxPercent {
		s.Percentage = s.MaxPercent
	}
}
