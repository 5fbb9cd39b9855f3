package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Point is a position in surface-local pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

type pathVerb int

const (
	verbMove pathVerb = iota
	verbLine
	verbClose
)

type pathOp struct {
	verb pathVerb
	x, y float32
}

// affine is a 2D transform in column-major canvas order:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

func (m affine) translate(tx, ty float64) affine {
	m.e += m.a*tx + m.c*ty
	m.f += m.b*tx + m.d*ty
	return m
}

func (m affine) scale(sx, sy float64) affine {
	m.a *= sx
	m.b *= sx
	m.c *= sy
	m.d *= sy
	return m
}

// Surface is a raster drawing context over an RGBA pixel buffer. It exposes
// the minimal primitive set the shape helpers build on: path construction,
// fill, stroke, a scoped transform stack and single-pixel sampling.
//
// Path points are transformed into device space as they are appended, so
// restoring the transform before a paint operation keeps the already-built
// path intact while the paint itself happens in unscaled space.
type Surface struct {
	img *image.RGBA

	// FillColor and StrokeColor are the current paint styles.
	FillColor   color.RGBA
	StrokeColor color.RGBA
	// LineWidth is the stroke thickness in pixels, minimum 1.
	LineWidth int

	tf    affine
	stack []affine

	path               []pathOp
	subpathX, subpathY float32
}

// New creates a surface backed by a fresh w×h pixel buffer.
func New(w, h int) *Surface {
	return &Surface{
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		FillColor:   color.RGBA{A: 255},
		StrokeColor: color.RGBA{A: 255},
		LineWidth:   1,
		tf:          identity,
	}
}

// RGBA returns the underlying pixel buffer.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Size returns the pixel dimensions of the surface.
func (s *Surface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear wipes the whole surface to the given color.
func (s *Surface) Clear(col color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Save pushes the current transform onto the state stack.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.tf)
}

// Restore pops the most recently saved transform. Restoring with an empty
// stack resets to the identity transform.
func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.tf = s.stack[n-1]
		s.stack = s.stack[:n-1]
		return
	}
	s.tf = identity
}

// Translate moves the origin of subsequent path points by (tx, ty).
func (s *Surface) Translate(tx, ty float64) {
	s.tf = s.tf.translate(tx, ty)
}

// Scale stretches subsequent path points by (sx, sy).
func (s *Surface) Scale(sx, sy float64) {
	s.tf = s.tf.scale(sx, sy)
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	dx, dy := s.tf.apply(x, y)
	s.subpathX, s.subpathY = float32(dx), float32(dy)
	s.path = append(s.path, pathOp{verb: verbMove, x: float32(dx), y: float32(dy)})
}

// LineTo appends a straight segment from the current point to (x, y).
func (s *Surface) LineTo(x, y float64) {
	dx, dy := s.tf.apply(x, y)
	s.path = append(s.path, pathOp{verb: verbLine, x: float32(dx), y: float32(dy)})
}

// ClosePath appends a segment back to the start of the current subpath.
func (s *Surface) ClosePath() {
	s.path = append(s.path, pathOp{verb: verbClose, x: s.subpathX, y: s.subpathY})
}

// Arc appends a full circle of radius r centred at (x, y), flattened into
// line segments. The segment count follows the transformed radius so circles
// drawn under a large scale stay smooth.
func (s *Surface) Arc(x, y, r float64) {
	rx := r * math.Hypot(s.tf.a, s.tf.b)
	ry := r * math.Hypot(s.tf.c, s.tf.d)
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		px := x + math.Cos(angle)*r
		py := y + math.Sin(angle)*r
		if i == 0 && len(s.path) == 0 {
			s.MoveTo(px, py)
		} else {
			s.LineTo(px, py)
		}
	}
}

// Fill paints the interior of the current path with FillColor using the
// non-zero winding rule. Unclosed subpaths are closed implicitly. The path
// is kept, matching fill/stroke pairs on the same outline.
func (s *Surface) Fill() {
	if len(s.path) < 3 {
		return
	}
	b := s.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, op := range s.path {
		switch op.verb {
		case verbMove:
			r.MoveTo(op.x, op.y)
		case verbLine:
			r.LineTo(op.x, op.y)
		case verbClose:
			r.ClosePath()
		}
	}
	if s.path[len(s.path)-1].verb != verbClose {
		r.ClosePath()
	}
	r.Draw(s.img, b, image.NewUniform(s.FillColor), image.Point{})
}

// Stroke paints the outline of the current path with StrokeColor and
// LineWidth. The path is kept.
func (s *Surface) Stroke() {
	if len(s.path) < 2 {
		return
	}
	thick := s.LineWidth
	if thick < 1 {
		thick = 1
	}
	var curX, curY float32
	for i, op := range s.path {
		switch op.verb {
		case verbMove:
			curX, curY = op.x, op.y
		case verbLine, verbClose:
			if i == 0 {
				curX, curY = op.x, op.y
				break
			}
			strokeSegment(s.img,
				int(math.Round(float64(curX))), int(math.Round(float64(curY))),
				int(math.Round(float64(op.x))), int(math.Round(float64(op.y))),
				s.StrokeColor, thick)
			curX, curY = op.x, op.y
		}
	}
}

// PixelColor samples the single pixel at (x, y). Each channel is an integer
// in 0–255. Out-of-bounds coordinates sample as fully transparent black.
func (s *Surface) PixelColor(x, y int) (r, g, b, a int) {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return 0, 0, 0, 0
	}
	c := s.img.RGBAAt(x, y)
	return int(c.R), int(c.G), int(c.B), int(c.A)
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func strokeSegment(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
