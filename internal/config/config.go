package config

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed default
var configFS embed.FS

type Config struct {
	UI       UIConfig        `toml:"ui"`
	Commands []CommandConfig `toml:"commands"`
}

type UIConfig struct {
	// Zoom is the canvas zoom, in cells per scene unit, for scenes whose
	// camera has none. zoom_reset returns to it.
	Zoom float64 `toml:"zoom"`
	// PanStep is how far one arrow key press moves the camera, in cells.
	PanStep float64 `toml:"pan_step"`
	// PanelWidth is the share of the screen, in percent, given to the layers panel.
	PanelWidth    float64          `toml:"panel_width"`
	DoubleClickMs int              `toml:"double_click_ms"`
	Colors        map[string]Color `toml:"colors"`
}

// CommandConfig declares a command that runs other commands in order.
type CommandConfig struct {
	Name string   `toml:"name"`
	Text string   `toml:"text"`
	Run  []string `toml:"run"`
}

// Color is a style entry. In TOML it is either a bare foreground colour
// string or a table.
type Color struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      *bool  `toml:"bold"`
	Italic    *bool  `toml:"italic"`
	Underline *bool  `toml:"underline"`
	Reverse   *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		var out Color
		for key, raw := range v {
			switch key {
			case "fg", "bg":
				s, ok := raw.(string)
				if !ok {
					return fmt.Errorf("color %s must be a string", key)
				}
				if key == "fg" {
					out.Fg = s
				} else {
					out.Bg = s
				}
			case "bold", "italic", "underline", "reverse":
				b, ok := raw.(bool)
				if !ok {
					return fmt.Errorf("color %s must be a boolean", key)
				}
				switch key {
				case "bold":
					out.Bold = &b
				case "italic":
					out.Italic = &b
				case "underline":
					out.Underline = &b
				case "reverse":
					out.Reverse = &b
				}
			default:
				return fmt.Errorf("unknown color attribute %q", key)
			}
		}
		*c = out
		return nil
	default:
		return fmt.Errorf("color must be a string or a table, got %T", value)
	}
}

// Validate checks the values the editor cannot work with.
func (c *Config) Validate() error {
	if c.UI.Zoom <= 0 {
		return fmt.Errorf("ui.zoom must be positive, got %v", c.UI.Zoom)
	}
	if c.UI.PanStep <= 0 {
		return fmt.Errorf("ui.pan_step must be positive, got %v", c.UI.PanStep)
	}
	if c.UI.PanelWidth < 0 || c.UI.PanelWidth >= 100 {
		return fmt.Errorf("ui.panel_width must be between 0 and 100, got %v", c.UI.PanelWidth)
	}
	if c.UI.DoubleClickMs <= 0 {
		return fmt.Errorf("ui.double_click_ms must be positive, got %d", c.UI.DoubleClickMs)
	}
	for i, cmd := range c.Commands {
		if strings.TrimSpace(cmd.Name) == "" {
			return fmt.Errorf("command at index %d: name is required", i)
		}
		if len(cmd.Run) == 0 {
			return fmt.Errorf("command %q: run must list at least one command", cmd.Name)
		}
	}
	return nil
}
