package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_UnmarshalTOML(t *testing.T) {
	content := `
[colors]
simple = "red"
complex = { fg = "blue", bg = "white", bold = true, underline = false }
`
	var out struct {
		Colors map[string]Color `toml:"colors"`
	}
	_, err := toml.Decode(content, &out)
	require.NoError(t, err)

	assert.Equal(t, Color{Fg: "red"}, out.Colors["simple"])

	complex := out.Colors["complex"]
	assert.Equal(t, "blue", complex.Fg)
	assert.Equal(t, "white", complex.Bg)
	require.NotNil(t, complex.Bold)
	assert.True(t, *complex.Bold)
	require.NotNil(t, complex.Underline, "explicit false is kept")
	assert.False(t, *complex.Underline)
	assert.Nil(t, complex.Italic)
}

func TestColor_UnmarshalTOML_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"number", `c = 5`},
		{"fg not a string", `c = { fg = 1 }`},
		{"bold not a bool", `c = { bold = "yes" }`},
		{"unknown attribute", `c = { blink = true }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				C Color `toml:"c"`
			}
			_, err := toml.Decode(tt.content, &out)
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.UI.Zoom)
	assert.Equal(t, 4.0, cfg.UI.PanStep)
	assert.Equal(t, 400, cfg.UI.DoubleClickMs)
	assert.Contains(t, cfg.UI.Colors, "status")
	assert.Contains(t, cfg.UI.Colors, "selection")
	require.Len(t, cfg.Commands, 1)
	assert.Equal(t, "reset_view", cfg.Commands[0].Name)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{UI: UIConfig{Zoom: 1, PanStep: 1, PanelWidth: 20, DoubleClickMs: 300}}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"zero zoom", func(c *Config) { c.UI.Zoom = 0 }, "ui.zoom"},
		{"negative pan step", func(c *Config) { c.UI.PanStep = -1 }, "ui.pan_step"},
		{"panel too wide", func(c *Config) { c.UI.PanelWidth = 100 }, "ui.panel_width"},
		{"no double click", func(c *Config) { c.UI.DoubleClickMs = 0 }, "ui.double_click_ms"},
		{"unnamed command", func(c *Config) { c.Commands = []CommandConfig{{Run: []string{"x"}}} }, "name is required"},
		{"empty command", func(c *Config) { c.Commands = []CommandConfig{{Name: "x"}} }, "run must list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWarnings(t *testing.T) {
	content := `
[ui]
zoom = 2.0
theme = "dark"

[ui.colors]
status = { fg = "red" }

[extra]
key = 1
`
	warnings := Warnings(content)
	assert.Contains(t, warnings, `unknown config key "ui.theme"`)
	assert.Contains(t, warnings, `unknown config key "extra"`)
	for _, w := range warnings {
		assert.NotContains(t, w, "ui.colors")
	}
}
