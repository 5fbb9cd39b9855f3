package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme

[canvas]
width = 1024
height = 768

[defaults]
color = Blue
shape = Star

[notify]
copy = true

[theme.my_custom_theme]
CanvasBackground = #111111
ButtonText = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}

	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("Unexpected canvas size: %+v", cfg.Canvas)
	}

	if cfg.Defaults.Color != "blue" {
		t.Errorf("Expected defaults.color 'blue', got '%s'", cfg.Defaults.Color)
	}
	if cfg.Defaults.Shape != "star" {
		t.Errorf("Expected defaults.shape 'star', got '%s'", cfg.Defaults.Shape)
	}

	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}

	if theme.CanvasBackground.R != 0x11 || theme.CanvasBackground.G != 0x11 || theme.CanvasBackground.B != 0x11 {
		t.Errorf("Unexpected CanvasBackground color: %+v", theme.CanvasBackground)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Unexpected default canvas size: %+v", cfg.Canvas)
	}
	if cfg.Defaults.Color != "random" || cfg.Defaults.Shape != "square" {
		t.Errorf("Unexpected default selections: %+v", cfg.Defaults)
	}
}

func TestParseRejectsBadCanvasSize(t *testing.T) {
	for _, input := range []string{
		"[canvas]\nwidth = zero\n",
		"[canvas]\nheight = -5\n",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Expected error for input %q", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark

[canvas]
width = 640
height = 480

[defaults]
color = yellow
shape = star

[notify]
copy = true

[theme.custom]
Name = custom
CanvasBackground = #000000
ButtonText = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Defaults != cfg2.Defaults {
		t.Errorf("Defaults mismatch: %+v vs %+v", cfg.Defaults, cfg2.Defaults)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.CanvasBackground != t2.CanvasBackground {
		t.Errorf("Theme background mismatch: %v vs %v", t1.CanvasBackground, t2.CanvasBackground)
	}
}
