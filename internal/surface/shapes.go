package surface

// Shape helpers layered on the path/fill/stroke primitives. All of them are
// stateless beyond the styles already held by the surface: each call builds
// its own path and paints it immediately.

// StrokeLine draws a single straight stroked segment from (x1, y1) to
// (x2, y2).
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64) {
	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.Stroke()
}

// FillCircle paints a filled circle of radius r centred at (x, y). A
// non-positive radius is a silent no-op.
func (s *Surface) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	s.BeginPath()
	s.Arc(x, y, r)
	s.Fill()
}

// StrokeCircle paints the outline of a circle of radius r centred at (x, y).
// A non-positive radius is a silent no-op.
func (s *Surface) StrokeCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	s.BeginPath()
	s.Arc(x, y, r)
	s.Stroke()
}

// FillOval paints a filled ellipse centred at (x, y) with horizontal radius
// rh and vertical radius rv. The ellipse is a unit circle drawn under a
// scoped anisotropic scale; the transform is restored before the fill so the
// paint happens in unscaled space.
func (s *Surface) FillOval(x, y, rh, rv float64) {
	s.Save()
	s.Translate(x, y)
	s.Scale(rh, rv)
	s.BeginPath()
	s.Arc(0, 0, 1)
	s.Restore()
	s.Fill()
}

// StrokeOval paints the outline of an ellipse centred at (x, y) with
// horizontal radius rh and vertical radius rv. The transform is restored
// before the stroke so line width is not distorted by the scale.
func (s *Surface) StrokeOval(x, y, rh, rv float64) {
	s.Save()
	s.Translate(x, y)
	s.Scale(rh, rv)
	s.BeginPath()
	s.Arc(0, 0, 1)
	s.Restore()
	s.Stroke()
}

// FillPoly paints a filled closed polygon through the ordered vertices.
// Fewer than 3 vertices is a silent no-op. The polygon is explicitly closed
// back to its first vertex before painting.
func (s *Surface) FillPoly(pts []Point) {
	if len(pts) < 3 {
		return
	}
	s.polyPath(pts)
	s.Fill()
}

// StrokePoly paints the closed outline of a polygon through the ordered
// vertices. Fewer than 2 vertices is a silent no-op.
func (s *Surface) StrokePoly(pts []Point) {
	if len(pts) < 2 {
		return
	}
	s.polyPath(pts)
	s.Stroke()
}

func (s *Surface) polyPath(pts []Point) {
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.LineTo(pts[0].X, pts[0].Y)
	s.ClosePath()
}
