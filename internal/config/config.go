package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/snajper102/Lab1GK/internal/theme"
)

// Canvas holds the drawing surface dimensions.
type Canvas struct {
	Width  int
	Height int
}

// Defaults holds the selections active when the window opens.
type Defaults struct {
	Color string
	Shape string
}

// Notify holds notification settings.
type Notify struct {
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme    string
	Canvas   Canvas
	Defaults Defaults
	Notify   Notify
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Canvas: Canvas{
			Width:  800,
			Height: 600,
		},
		Defaults: Defaults{
			Color: "random",
			Shape: "square",
		},
		Notify: Notify{
			Copy: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	sb.WriteString("\n")

	// Canvas section
	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	sb.WriteString("\n")

	// Defaults section
	sb.WriteString("[defaults]\n")
	fmt.Fprintf(&sb, "color = %s\n", c.Defaults.Color)
	fmt.Fprintf(&sb, "shape = %s\n", c.Defaults.Shape)
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "CanvasBackground: %s\n", toHex(t.CanvasBackground))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "SwatchBorder: %s\n", toHex(t.SwatchBorder))
		fmt.Fprintf(&sb, "SwatchSelected: %s\n", toHex(t.SwatchSelected))
		fmt.Fprintf(&sb, "StatusBackground: %s\n", toHex(t.StatusBackground))
		fmt.Fprintf(&sb, "StatusText: %s\n", toHex(t.StatusText))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
