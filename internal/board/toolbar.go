package board

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/snajper102/Lab1GK/internal/stamp"
	"github.com/snajper102/Lab1GK/internal/theme"
)

// toolbarHeight is the pixel height of the selector bar above the canvas.
const toolbarHeight = 32

const (
	swatchSize = 20
	swatchGap  = 6
	buttonW    = 64
)

// selectionState is the UI selection collaborator: it owns the live color
// and shape choices and hands them to the stamp controller as raw indexes.
type selectionState struct {
	color int
	shape int
}

func (s *selectionState) ColorChoice() int { return s.color }
func (s *selectionState) ShapeChoice() int { return s.shape }

var swatchColors = []color.RGBA{
	{},                 // random, drawn as a quadrant swatch
	{255, 0, 0, 255},   // red
	{0, 128, 0, 255},   // green
	{0, 0, 255, 255},   // blue
	{255, 255, 0, 255}, // yellow
}

var shapeLabels = []string{"Square", "Star"}

// toolbar lays out and hit-tests the selector bar.
type toolbar struct {
	swatches    []image.Rectangle
	shapes      []image.Rectangle
	hoverSwatch int
	hoverShape  int
}

func newToolbar() *toolbar {
	return &toolbar{hoverSwatch: -1, hoverShape: -1}
}

func (tb *toolbar) layout(width int) {
	tb.swatches = tb.swatches[:0]
	tb.shapes = tb.shapes[:0]
	x := swatchGap
	y := (toolbarHeight - swatchSize) / 2
	for range swatchColors {
		tb.swatches = append(tb.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + swatchGap
	}
	x += swatchGap * 2
	for range shapeLabels {
		tb.shapes = append(tb.shapes, image.Rect(x, y-2, x+buttonW, y+swatchSize+2))
		x += buttonW + swatchGap
	}
}

// hover updates the hover highlight for p and reports whether it changed.
func (tb *toolbar) hover(p image.Point) bool {
	swatch, shape := -1, -1
	for i, r := range tb.swatches {
		if p.In(r) {
			swatch = i
			break
		}
	}
	for i, r := range tb.shapes {
		if p.In(r) {
			shape = i
			break
		}
	}
	changed := swatch != tb.hoverSwatch || shape != tb.hoverShape
	tb.hoverSwatch = swatch
	tb.hoverShape = shape
	return changed
}

// click applies a press at p to the selection and reports whether anything
// was selected.
func (tb *toolbar) click(p image.Point, sel *selectionState) bool {
	for i, r := range tb.swatches {
		if p.In(r) {
			sel.color = i
			return true
		}
	}
	for i, r := range tb.shapes {
		if p.In(r) {
			sel.shape = i
			return true
		}
	}
	return false
}

func (tb *toolbar) draw(dst *image.RGBA, th *theme.Theme, sel *selectionState) {
	bar := image.Rect(0, 0, dst.Bounds().Dx(), toolbarHeight)
	draw.Draw(dst, bar, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)

	for i, r := range tb.swatches {
		if i == 0 {
			drawRandomSwatch(dst, r)
		} else {
			draw.Draw(dst, r, &image.Uniform{swatchColors[i]}, image.Point{}, draw.Src)
		}
		if i == tb.hoverSwatch {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		border := th.SwatchBorder
		if i == sel.color {
			border = th.SwatchSelected
		}
		drawBorder(dst, r, border, i == sel.color)
	}

	for i, r := range tb.shapes {
		bg := th.ButtonBackground
		if i == sel.shape {
			bg = th.ButtonBackgroundPress
		} else if i == tb.hoverShape {
			bg = th.ButtonBackgroundHover
		}
		draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
		drawLabel(dst, th.ButtonText, r.Min.X+6, r.Min.Y+16, shapeLabels[i])
	}
}

func drawLabel(dst *image.RGBA, col color.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawRandomSwatch renders the random choice as four colored quadrants.
func drawRandomSwatch(dst *image.RGBA, r image.Rectangle) {
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	quads := []struct {
		rect image.Rectangle
		col  color.RGBA
	}{
		{image.Rect(r.Min.X, r.Min.Y, cx, cy), color.RGBA{255, 0, 0, 255}},
		{image.Rect(cx, r.Min.Y, r.Max.X, cy), color.RGBA{0, 128, 0, 255}},
		{image.Rect(r.Min.X, cy, cx, r.Max.Y), color.RGBA{0, 0, 255, 255}},
		{image.Rect(cx, cy, r.Max.X, r.Max.Y), color.RGBA{255, 255, 0, 255}},
	}
	for _, q := range quads {
		draw.Draw(dst, q.rect, &image.Uniform{q.col}, image.Point{}, draw.Src)
	}
}

func drawBorder(dst *image.RGBA, r image.Rectangle, col color.RGBA, thick bool) {
	lines := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	if thick {
		lines = append(lines,
			image.Rect(r.Min.X-1, r.Min.Y-1, r.Max.X+1, r.Min.Y),
			image.Rect(r.Min.X-1, r.Max.Y, r.Max.X+1, r.Max.Y+1),
			image.Rect(r.Min.X-1, r.Min.Y-1, r.Min.X, r.Max.Y+1),
			image.Rect(r.Max.X, r.Min.Y-1, r.Max.X+1, r.Max.Y+1),
		)
	}
	for _, l := range lines {
		draw.Draw(dst, l, &image.Uniform{col}, image.Point{}, draw.Src)
	}
}

var _ stamp.Selection = (*selectionState)(nil)
