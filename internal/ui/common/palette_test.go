package common

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/idursun/scened/internal/config"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestPalette_GetInheritsFromLessSpecificSelectors(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{
		"panel":          {Fg: "white"},
		"panel selected": {Bg: "cyan"},
		"selected":       {Bold: boolPtr(true)},
	})

	style := p.Get("panel selected")
	assert.Equal(t, lipgloss.Color("7"), style.GetForeground())
	assert.Equal(t, lipgloss.Color("6"), style.GetBackground())
	assert.True(t, style.GetBold())

	assert.Equal(t, lipgloss.Color("7"), p.Get("panel").GetForeground())
	assert.False(t, p.Get("panel").GetBold())
}

func TestPalette_UpdateInvalidatesCache(t *testing.T) {
	p := NewPalette()
	p.Update(map[string]config.Color{"status": {Fg: "red"}})
	assert.Equal(t, lipgloss.Color("1"), p.Get("status").GetForeground())

	p.Update(map[string]config.Color{"status": {Fg: "green"}})
	assert.Equal(t, lipgloss.Color("2"), p.Get("status").GetForeground())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"#ff0000", lipgloss.Color("#ff0000")},
		{"42", lipgloss.Color("42")},
		{"bright blue", lipgloss.Color("12")},
		{"ansi-color-200", lipgloss.Color("200")},
		{"ansi-color-300", lipgloss.NoColor{}},
		{"mauve", lipgloss.NoColor{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.in))
		})
	}
}
