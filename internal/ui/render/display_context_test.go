package render

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/scened/internal/ui/layout"
)

func TestDisplayContext_AddDraw(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 10, 1), "test", 0)

	if len(dl.draws) != 1 {
		t.Fatalf("AddDraw: expected 1 draw op, got %d", len(dl.draws))
	}
	if dl.draws[0].Content != "test" {
		t.Errorf("AddDraw: expected content 'test', got '%s'", dl.draws[0].Content)
	}
}

func TestDisplayContext_LayeredRender(t *testing.T) {
	dl := NewDisplayContext()

	// added front first to make sure Z, not insertion order, decides
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Front", 1)
	dl.AddDraw(layout.Rect(0, 0, 10, 1), "Background", 0)

	output := dl.RenderToString(10, 1)
	if !strings.HasPrefix(output, "Frontround") {
		t.Errorf("expected 'Front' painted over 'Background', got: %q", output)
	}
}

func TestDisplayContext_SameZKeepsInsertionOrder(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 3, 1), "aaa", 0)
	dl.AddDraw(layout.Rect(0, 0, 3, 1), "bbb", 0)

	output := dl.RenderToString(3, 1)
	if !strings.HasPrefix(output, "bbb") {
		t.Errorf("expected later draw on top, got: %q", output)
	}
}

func TestDisplayContext_FillThenDraw(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddFill(layout.Rect(0, 0, 4, 1), '.', lipgloss.NewStyle(), 0)
	dl.AddDraw(layout.Rect(1, 0, 1, 1), "x", 1)

	output := dl.RenderToString(4, 1)
	if !strings.HasPrefix(output, ".x..") {
		t.Errorf("expected fill with draw on top, got: %q", output)
	}
}

func TestDisplayContext_AddFillIgnoresEmptyRect(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddFill(layout.Rect(0, 0, 0, 3), '#', lipgloss.NewStyle(), 0)
	if dl.Len() != 0 {
		t.Errorf("expected no ops for empty fill, got %d", dl.Len())
	}
}

func TestAttrEffect_SetsAttribute(t *testing.T) {
	tests := []struct {
		name    string
		applyFn func(dl *DisplayContext, rect layout.Rectangle)
		want    uv.Style
	}{
		{"Bold", func(dl *DisplayContext, rect layout.Rectangle) { dl.AddBold(rect, 0) }, uv.Style{Attrs: uv.AttrBold}},
		{"Dim", func(dl *DisplayContext, rect layout.Rectangle) { dl.AddDim(rect, 0) }, uv.Style{Attrs: uv.AttrFaint}},
		{"Reverse", func(dl *DisplayContext, rect layout.Rectangle) { dl.AddReverse(rect, 0) }, uv.Style{Attrs: uv.AttrReverse}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dl := NewDisplayContext()
			dl.AddDraw(layout.Rect(0, 0, 4, 1), "Test", 0)
			tc.applyFn(dl, layout.Rect(0, 0, 2, 1))

			buf := uv.NewScreenBuffer(10, 1)
			dl.Render(buf)

			cell := buf.CellAt(1, 0)
			if cell == nil || cell.Content != "e" {
				t.Fatalf("expected content to survive the effect, got %+v", cell)
			}
			if cell.Style.Attrs&tc.want.Attrs == 0 {
				t.Errorf("expected attribute %d inside the rect, got %d", tc.want.Attrs, cell.Style.Attrs)
			}
			if outside := buf.CellAt(2, 0); outside != nil && outside.Style.Attrs&tc.want.Attrs != 0 {
				t.Errorf("attribute leaked outside the rect")
			}
		})
	}
}

func TestHandlesEffect_MarksCorners(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddHandles(layout.Rect(1, 1, 3, 3), lipgloss.NewStyle(), 0)

	buf := uv.NewScreenBuffer(5, 5)
	dl.Render(buf)

	for _, p := range []layout.Position{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}} {
		cell := buf.CellAt(p.X, p.Y)
		if cell == nil || cell.Content != "■" {
			t.Errorf("expected handle at %v, got %+v", p, cell)
		}
	}
	if cell := buf.CellAt(2, 2); cell != nil && cell.Content == "■" {
		t.Error("center of the rect must not be marked")
	}
}

func TestIterateCells_BoundsChecking(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Hello", 0)
	dl.AddReverse(layout.Rect(3, 0, 20, 1), 0)

	buf := uv.NewScreenBuffer(10, 1)
	dl.Render(buf)

	if cell := buf.CellAt(4, 0); cell == nil {
		t.Error("expected cell at (4,0) to exist")
	}
}

func TestDisplayContext_HitTestPrefersHigherZ(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 10, 10), "low", InteractionHover, 0)
	dl.AddInteraction(layout.Rect(2, 2, 2, 2), "high", InteractionHover, 5)

	op, ok := dl.HitTest(3, 3, InteractionHover)
	if !ok || op.Msg != "high" {
		t.Fatalf("expected high, got %v (ok=%v)", op.Msg, ok)
	}

	op, ok = dl.HitTest(8, 8, InteractionHover)
	if !ok || op.Msg != "low" {
		t.Fatalf("expected low, got %v (ok=%v)", op.Msg, ok)
	}

	if _, ok := dl.HitTest(8, 8, InteractionDrag); ok {
		t.Error("expected no drag region")
	}
}

func TestDisplayContext_HitTestSameZPrefersLastAdded(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 4, 4), "first", InteractionClick, 1)
	dl.AddInteraction(layout.Rect(0, 0, 4, 4), "second", InteractionClick, 1)

	op, ok := dl.HitTest(1, 1, InteractionClick)
	if !ok || op.Msg != "second" {
		t.Fatalf("expected second, got %v", op.Msg)
	}
}

type dragMsg struct{ X, Y int }

func (m dragMsg) SetDragStart(x, y int) tea.Msg {
	m.X, m.Y = x, y
	return m
}

func TestProcessMouseEvent_DragStartCarrier(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 5, 5), "click", InteractionClick, 0)
	dl.AddInteraction(layout.Rect(0, 0, 5, 5), dragMsg{}, InteractionDrag, 3)

	msg, handled := dl.ProcessMouseEvent(tea.MouseClickMsg{X: 2, Y: 4, Button: tea.MouseLeft})
	if !handled {
		t.Fatal("expected click to be handled")
	}
	got, ok := msg.(dragMsg)
	if !ok || got.X != 2 || got.Y != 4 {
		t.Fatalf("expected drag start at 2,4, got %#v", msg)
	}
}

func TestProcessMouseEvent_TopmostPressWins(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 5, 5), dragMsg{}, InteractionDrag, 0)
	dl.AddBackdrop(layout.Rect(0, 0, 10, 10), 5)

	msg, handled := dl.ProcessMouseEvent(tea.MouseClickMsg{X: 2, Y: 2, Button: tea.MouseLeft})
	if !handled {
		t.Fatal("expected the backdrop to swallow the click")
	}
	if msg != nil {
		t.Fatalf("expected no message, got %#v", msg)
	}
}

type scrollMsg struct{ Delta int }

func (m scrollMsg) SetDelta(delta int, _ bool) tea.Msg {
	m.Delta = delta
	return m
}

func TestProcessMouseEvent_WheelCarriesDelta(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 5, 5), scrollMsg{}, InteractionScroll, 0)

	msg, handled := dl.ProcessMouseEvent(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelDown})
	if !handled {
		t.Fatal("expected wheel to be handled")
	}
	if got := msg.(scrollMsg); got.Delta != 3 {
		t.Errorf("expected delta 3, got %d", got.Delta)
	}
}

func TestDisplayContext_Reuse(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Frame1", 0)
	if dl.Len() != 1 {
		t.Errorf("expected 1 op, got %d", dl.Len())
	}

	dl.Clear()
	if dl.Len() != 0 {
		t.Errorf("expected 0 ops after clear, got %d", dl.Len())
	}
}
