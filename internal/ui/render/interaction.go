package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/scened/internal/ui/layout"
)

// InteractionType defines what kinds of input an interactive region responds to.
// Multiple types can be combined using bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
	InteractionDrag
	InteractionHover
)

// InteractionOp represents an interactive region that responds to input.
type InteractionOp struct {
	Rect layout.Rectangle // The interactive area (absolute coordinates)
	Msg  tea.Msg          // Message to send
	Type InteractionType
	Z    int // higher = priority
}

// ScrollDeltaCarrier is implemented by messages that want the wheel delta.
type ScrollDeltaCarrier interface {
	SetDelta(delta int, horizontal bool) tea.Msg
}

// DragStartCarrier is implemented by messages that want the drag start position.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

type interactionMatcher func(interactionOp) bool

func contains(r layout.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// processMouseEvent expects interactions sorted by priority, highest first.
func processMouseEvent(interactions []interactionOp, msg tea.MouseMsg, match interactionMatcher) (tea.Msg, bool) {
	mouse := msg.Mouse()
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return nil, false
		}
		// the topmost region that takes presses wins, so overlays hide
		// whatever is underneath
		for _, interaction := range interactions {
			if !match(interaction) || interaction.Type&(InteractionClick|InteractionDrag) == 0 {
				continue
			}
			if !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			if interaction.Type&InteractionDrag != 0 {
				if carrier, ok := interaction.Msg.(DragStartCarrier); ok {
					return carrier.SetDragStart(mouse.X, mouse.Y), true
				}
			}
			return interaction.Msg, true
		}
	case tea.MouseWheelMsg:
		delta := 0
		horizontal := false
		switch mouse.Button {
		case tea.MouseWheelUp:
			delta = -3
		case tea.MouseWheelDown:
			delta = 3
		case tea.MouseWheelLeft:
			delta, horizontal = -3, true
		case tea.MouseWheelRight:
			delta, horizontal = 3, true
		default:
			return nil, false
		}
		for _, interaction := range interactions {
			if !match(interaction) || interaction.Type&InteractionScroll == 0 {
				continue
			}
			if contains(interaction.Rect, mouse.X, mouse.Y) {
				if carrier, ok := interaction.Msg.(ScrollDeltaCarrier); ok {
					return carrier.SetDelta(delta, horizontal), true
				}
				return interaction.Msg, true
			}
		}
	}

	return nil, false
}
