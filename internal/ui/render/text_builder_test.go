package render

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/ui/layout"
)

type testClickMsg struct {
	ID int
}

func TestTextBuilder_Write(t *testing.T) {
	dl := NewDisplayContext()

	dl.Text(0, 0, 0).
		Write("Hello").
		Done()

	draws := dl.DrawList()
	if len(draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(draws))
	}
	if draws[0].Content != "Hello" {
		t.Errorf("expected content 'Hello', got '%s'", draws[0].Content)
	}
}

func TestTextBuilder_MultipleSegments(t *testing.T) {
	dl := NewDisplayContext()

	dl.Text(0, 0, 0).
		Write("A").
		Clickable("BB", lipgloss.Style{}, testClickMsg{ID: 1}).
		Write("C").
		Done()

	draws := dl.DrawList()
	if len(draws) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(draws))
	}
	if draws[1].Rect.Min.X != 1 || draws[2].Rect.Min.X != 3 {
		t.Errorf("unexpected segment positions: %v %v", draws[1].Rect, draws[2].Rect)
	}

	interactions := dl.InteractionsList()
	if len(interactions) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(interactions))
	}
	if msg, ok := interactions[0].Msg.(testClickMsg); !ok || msg.ID != 1 {
		t.Errorf("expected testClickMsg{1}, got %#v", interactions[0].Msg)
	}
}

func TestTextBuilder_ClipStopsAtMaxX(t *testing.T) {
	dl := NewDisplayContext()

	dl.Text(0, 0, 0).
		Clip(4).
		Write("abc").
		Write("def").
		Write("ghi").
		Done()

	draws := dl.DrawList()
	if len(draws) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(draws))
	}
	if draws[1].Rect.Dx() != 1 {
		t.Errorf("expected clipped width 1, got %d", draws[1].Rect.Dx())
	}
}

func TestTextBuilder_EmptyTextSkipped(t *testing.T) {
	dl := NewDisplayContext()

	dl.Text(0, 0, 0).
		Write("").
		Write("Hello").
		Done()

	if draws := dl.DrawList(); len(draws) != 1 {
		t.Fatalf("expected 1 draw (empty skipped), got %d", len(draws))
	}
}

func TestTextBuilder_BackdropSwallowsClick(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddBackdrop(layout.Rect(0, 0, 50, 10), 10)

	dl.Text(5, 5, 20).
		Clickable("Click", lipgloss.Style{}, testClickMsg{ID: 1}).
		Done()

	result, handled := dl.ProcessMouseEvent(tea.MouseClickMsg{X: 5, Y: 5, Button: tea.MouseLeft})
	if !handled {
		t.Fatal("expected mouse event to be handled")
	}
	if msg, ok := result.(testClickMsg); !ok || msg.ID != 1 {
		t.Fatalf("expected testClickMsg{1}, got %#v", result)
	}

	result, handled = dl.ProcessMouseEvent(tea.MouseClickMsg{X: 40, Y: 5, Button: tea.MouseLeft})
	if !handled {
		t.Fatal("expected backdrop to swallow the click")
	}
	if result != nil {
		t.Errorf("expected nil message from backdrop, got %v", result)
	}
}
