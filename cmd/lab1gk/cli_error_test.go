package main

import (
	"strings"
	"testing"

	"github.com/snajper102/Lab1GK/internal/config"
	"github.com/snajper102/Lab1GK/internal/stamp"
)

func testRoot() *root {
	return &root{program: "lab1gk", config: config.New()}
}

func TestParseSketchRejectsUnknownColor(t *testing.T) {
	_, err := parseSketchCmd([]string{"-color", "purple"}, testRoot())
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `unknown color "purple"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestParseSketchRejectsUnknownShape(t *testing.T) {
	_, err := parseSketchCmd([]string{"-shape", "triangle"}, testRoot())
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `unknown shape "triangle"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestParseSketchRejectsBadDimensions(t *testing.T) {
	_, err := parseSketchCmd([]string{"-width", "-3"}, testRoot())
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "dimensions must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestParseSketchUsesConfigDefaults(t *testing.T) {
	r := testRoot()
	r.config.Canvas.Width = 320
	r.config.Canvas.Height = 200
	r.config.Defaults.Color = "blue"
	r.config.Defaults.Shape = "star"

	cmd, err := parseSketchCmd(nil, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.width != 320 || cmd.height != 200 {
		t.Errorf("dimensions = %dx%d, want 320x200", cmd.width, cmd.height)
	}
	if cmd.color != stamp.ColorBlue {
		t.Errorf("color = %v, want %v", cmd.color, stamp.ColorBlue)
	}
	if cmd.shape != stamp.ShapeStar {
		t.Errorf("shape = %v, want %v", cmd.shape, stamp.ShapeStar)
	}
	if cmd.seeded {
		t.Error("seed should not be marked as set")
	}
}

func TestParseSketchMarksExplicitSeed(t *testing.T) {
	cmd, err := parseSketchCmd([]string{"-seed", "7"}, testRoot())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !cmd.seeded || cmd.seed != 7 {
		t.Errorf("seeded=%v seed=%d, want seeded with 7", cmd.seeded, cmd.seed)
	}
}

func TestRootRunWithoutCommandReturnsUsage(t *testing.T) {
	r := testRoot()
	r.fs = newRoot().fs
	err := r.Run(nil)
	if err == nil {
		t.Fatalf("expected usage error")
	}
	if _, ok := err.(*UsageError); !ok {
		t.Fatalf("expected *UsageError, got %T", err)
	}
}
