package theme

import (
	"image/color"
)

// Theme defines the color palette for the sketch window UI.
type Theme struct {
	Name string

	// Canvas
	CanvasBackground color.RGBA

	// Toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	SwatchBorder          color.RGBA
	SwatchSelected        color.RGBA

	// Status line
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		CanvasBackground:      color.RGBA{255, 255, 255, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		SwatchBorder:          color.RGBA{96, 96, 96, 255},
		SwatchSelected:        color.RGBA{0, 0, 0, 255},
		StatusBackground:      color.RGBA{40, 40, 40, 230},
		StatusText:            color.RGBA{255, 255, 255, 255},
	}
}
