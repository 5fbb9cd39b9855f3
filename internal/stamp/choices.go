package stamp

import (
	"fmt"
	"strings"
)

// Colors returns the color choices in selector order.
func Colors() []ColorChoice {
	return []ColorChoice{ColorRandom, ColorRed, ColorGreen, ColorBlue, ColorYellow}
}

// Shapes returns the shape choices in selector order.
func Shapes() []ShapeChoice {
	return []ShapeChoice{ShapeSquare, ShapeStar}
}

// ParseColorChoice maps a color name to a choice. Matching is
// case-insensitive.
func ParseColorChoice(name string) (ColorChoice, error) {
	for _, c := range Colors() {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// ParseShapeChoice maps a shape name to a choice. Matching is
// case-insensitive.
func ParseShapeChoice(name string) (ShapeChoice, error) {
	for _, s := range Shapes() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
