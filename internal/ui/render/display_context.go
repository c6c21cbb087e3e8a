package render

import (
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/scened/internal/ui/layout"
)

// DisplayContext holds all rendering operations for a frame.
// Operations are accumulated during the layout/render pass,
// then executed in order by batch and Z-index.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	interactions []interactionOp
	orderCounter int
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:        make([]drawOp, 0, 32),
		effects:      make([]effectOp, 0, 16),
		interactions: make([]interactionOp, 0, 16),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.orderCounter++
	return dl.orderCounter
}

// AddBackdrop swallows click/scroll input in a region.
func (dl *DisplayContext) AddBackdrop(rect layout.Rectangle, z int) {
	dl.AddInteraction(rect, nil, InteractionClick|InteractionScroll|InteractionHover, z)
}

func (dl *DisplayContext) AddDraw(rect layout.Rectangle, content string, z int) {
	dl.draws = append(dl.draws, drawOp{
		Draw: Draw{
			Rect:    rect,
			Content: content,
			Z:       z,
		},
		order: dl.nextOrder(),
	})
}

// AddFill fills a rectangle with the provided rune and style.
func (dl *DisplayContext) AddFill(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dl.AddEffect(FillEffect{
		Rect:  rect,
		Char:  ch,
		Style: lipglossToStyle(style),
		Z:     z,
	})
}

// AddEffect adds any Effect implementation to the display context.
func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{
		effect: effect,
		order:  dl.nextOrder(),
		z:      effect.GetZ(),
	})
}

// AddReverse swaps foreground and background over rect. The layers panel
// marks the selected layer with it.
func (dl *DisplayContext) AddReverse(rect layout.Rectangle, z int) {
	dl.AddEffect(AttrEffect{Rect: rect, Attr: AttrReverse, Z: z})
}

// AddDim renders rect faint, as hidden layers are listed.
func (dl *DisplayContext) AddDim(rect layout.Rectangle, z int) {
	dl.AddEffect(AttrEffect{Rect: rect, Attr: AttrDim, Z: z})
}

func (dl *DisplayContext) AddBold(rect layout.Rectangle, z int) {
	dl.AddEffect(AttrEffect{Rect: rect, Attr: AttrBold, Z: z})
}

func (dl *DisplayContext) AddHighlight(rect layout.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(HighlightEffect{Rect: rect, Style: style, Z: z})
}

// AddHandles marks the four corners of rect, the way selection handles are
// drawn around an instance.
func (dl *DisplayContext) AddHandles(rect layout.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(HandlesEffect{Rect: rect, Style: lipglossToStyle(style), Z: z})
}

func (dl *DisplayContext) AddInteraction(rect layout.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	if rect.Empty() {
		return
	}
	dl.interactions = append(dl.interactions, interactionOp{
		InteractionOp: InteractionOp{
			Rect: rect,
			Msg:  msg,
			Type: typ,
			Z:    z,
		},
		order: dl.nextOrder(),
	})
}

// Clear removes all operations so the context can be reused for the next frame.
func (dl *DisplayContext) Clear() {
	dl.draws = dl.draws[:0]
	dl.effects = dl.effects[:0]
	dl.interactions = dl.interactions[:0]
	dl.orderCounter = 0
}

// Render executes all operations in the display context to the given screen.
// Draws and effects are interleaved by Z-index; within the same Z they run in
// the order they were added.
func (dl *DisplayContext) Render(buf uv.Screen) {
	if len(dl.draws) == 0 && len(dl.effects) == 0 {
		return
	}

	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{
			z:      op.Z,
			order:  op.order,
			draw:   op.Draw,
			isDraw: true,
		})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{
			z:      op.z,
			order:  op.order,
			effect: op.effect,
		})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			uv.NewStyledString(op.draw.Content).Draw(buf, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

// RenderToString renders to a new buffer and returns the final string output.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// DrawList returns a copy of all Draw calls in insertion order.
func (dl *DisplayContext) DrawList() []Draw {
	result := make([]Draw, len(dl.draws))
	for i, op := range dl.draws {
		result[i] = op.Draw
	}
	return result
}

// InteractionsList returns all interactions sorted by Z-index (highest first for priority).
func (dl *DisplayContext) InteractionsList() []InteractionOp {
	sorted := dl.sortedInteractions()
	result := make([]InteractionOp, len(sorted))
	for i, op := range sorted {
		result[i] = op.InteractionOp
	}
	return result
}

// HitTest returns the topmost interaction of the given type under (x, y).
// Later registrations win over earlier ones at the same Z, so whatever was
// painted last is what gets hit.
func (dl *DisplayContext) HitTest(x, y int, typ InteractionType) (InteractionOp, bool) {
	var (
		best  interactionOp
		found bool
	)
	for _, op := range dl.interactions {
		if op.Type&typ == 0 || !contains(op.Rect, x, y) {
			continue
		}
		if !found || op.Z > best.Z || (op.Z == best.Z && op.order > best.order) {
			best = op
			found = true
		}
	}
	return best.InteractionOp, found
}

// Len returns the total number of operations in the display context.
func (dl *DisplayContext) Len() int {
	return len(dl.draws) + len(dl.effects) + len(dl.interactions)
}

// ProcessMouseEvent routes a click or wheel event through the registered interactions.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	switch msg.(type) {
	case tea.MouseClickMsg, tea.MouseWheelMsg:
	default:
		return nil, false
	}
	return processMouseEvent(dl.sortedInteractions(), msg, func(interactionOp) bool { return true })
}

func (dl *DisplayContext) sortedInteractions() []interactionOp {
	sorted := make([]interactionOp, len(dl.interactions))
	copy(sorted, dl.interactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		return sorted[i].order > sorted[j].order
	})
	return sorted
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
	z      int
}

type interactionOp struct {
	InteractionOp
	order int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}
