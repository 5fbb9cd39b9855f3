package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesFields(t *testing.T) {
	src := `
# comment
Name: Test
CanvasBackground: #102030
StatusBackground: #00000080
UnknownField: #FFFFFF
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Test" {
		t.Errorf("Name = %q, want %q", th.Name, "Test")
	}
	if want := (color.RGBA{16, 32, 48, 255}); th.CanvasBackground != want {
		t.Errorf("CanvasBackground = %v, want %v", th.CanvasBackground, want)
	}
	if want := (color.RGBA{0, 0, 0, 128}); th.StatusBackground != want {
		t.Errorf("StatusBackground = %v, want %v", th.StatusBackground, want)
	}
	// Untouched fields keep their defaults.
	if th.ButtonText != Default().ButtonText {
		t.Errorf("ButtonText = %v, want default %v", th.ButtonText, Default().ButtonText)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse(strings.NewReader("CanvasBackground: 102030\n"))
	if err == nil {
		t.Fatal("expected error for color without # prefix")
	}
}

func TestLoadEmbeddedThemes(t *testing.T) {
	l := NewLoader()
	for _, name := range []string{"dark", "high_contrast"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name == "Default" {
			t.Errorf("Load(%q) returned the default theme", name)
		}
	}
}

func TestLoadUnknownThemeFails(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	if _, err := l.Load("no-such-theme"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
