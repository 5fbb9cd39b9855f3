package surface

import (
	"image/color"
	"testing"
)

func TestClearAndPixelColor(t *testing.T) {
	s := New(8, 8)
	s.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	r, g, b, a := s.PixelColor(3, 3)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Fatalf("unexpected sample (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestPixelColorOutOfBounds(t *testing.T) {
	s := New(4, 4)
	s.Clear(color.White)
	r, g, b, a := s.PixelColor(-1, 10)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("expected transparent black outside bounds, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestStrokeLinePaintsEndpoints(t *testing.T) {
	s := New(20, 20)
	s.StrokeColor = color.RGBA{B: 255, A: 255}
	s.StrokeLine(2, 2, 12, 12)
	for _, p := range [][2]int{{2, 2}, {7, 7}, {12, 12}} {
		if _, _, b, a := s.PixelColor(p[0], p[1]); b != 255 || a != 255 {
			t.Fatalf("expected stroke pixel at %v", p)
		}
	}
	if _, _, _, a := s.PixelColor(2, 12); a != 0 {
		t.Fatalf("unexpected paint away from the segment")
	}
}

func TestFillKeepsPaintInsidePath(t *testing.T) {
	s := New(20, 20)
	s.FillColor = color.RGBA{R: 255, A: 255}
	s.BeginPath()
	s.MoveTo(5, 5)
	s.LineTo(15, 5)
	s.LineTo(15, 15)
	s.LineTo(5, 15)
	s.ClosePath()
	s.Fill()
	if r, _, _, a := s.PixelColor(10, 10); r != 255 || a != 255 {
		t.Fatalf("expected fill inside the path")
	}
	if _, _, _, a := s.PixelColor(2, 2); a != 0 {
		t.Fatalf("expected no paint outside the path")
	}
}

func TestSaveRestoreScopesTransform(t *testing.T) {
	s := New(10, 10)
	s.Save()
	s.Translate(4, 4)
	s.Scale(2, 2)
	s.Restore()
	s.BeginPath()
	s.MoveTo(1, 2)
	if len(s.path) != 1 {
		t.Fatalf("expected a single path op, got %d", len(s.path))
	}
	if op := s.path[0]; op.x != 1 || op.y != 2 {
		t.Fatalf("restored transform still scales points: got (%v,%v)", op.x, op.y)
	}
}

func TestRestoreOnEmptyStackResetsToIdentity(t *testing.T) {
	s := New(10, 10)
	s.Translate(5, 5)
	s.Restore()
	s.BeginPath()
	s.MoveTo(0, 0)
	if op := s.path[0]; op.x != 0 || op.y != 0 {
		t.Fatalf("expected identity after restoring an empty stack, got (%v,%v)", op.x, op.y)
	}
}

func TestPathPointsTransformedWhenAppended(t *testing.T) {
	s := New(50, 50)
	s.Save()
	s.Translate(10, 20)
	s.Scale(3, 4)
	s.BeginPath()
	s.MoveTo(1, 1)
	s.Restore()
	// The point entered the path under the transform and must stay there
	// after the restore.
	if op := s.path[0]; op.x != 13 || op.y != 24 {
		t.Fatalf("expected device point (13,24), got (%v,%v)", op.x, op.y)
	}
}

func TestFillIgnoresDegeneratePath(t *testing.T) {
	s := New(8, 8)
	s.FillColor = color.RGBA{G: 255, A: 255}
	s.BeginPath()
	s.MoveTo(1, 1)
	s.LineTo(5, 5)
	s.Fill()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if _, _, _, a := s.PixelColor(x, y); a != 0 {
				t.Fatalf("degenerate path painted pixel (%d,%d)", x, y)
			}
		}
	}
}
