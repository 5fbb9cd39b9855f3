// Command lab1gk-sketch opens the drawing window directly with the
// configured defaults. The full CLI lives in cmd/lab1gk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snajper102/Lab1GK/internal/board"
	"github.com/snajper102/Lab1GK/internal/config"
	"github.com/snajper102/Lab1GK/internal/notify"
	"github.com/snajper102/Lab1GK/internal/stamp"
	"github.com/snajper102/Lab1GK/internal/theme"
)

var version = "dev"

func main() {
	loader := config.NewLoader(version, "")
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	width := flag.Int("width", cfg.Canvas.Width, "drawing surface width in pixels")
	height := flag.Int("height", cfg.Canvas.Height, "drawing surface height in pixels")
	colorName := flag.String("color", cfg.Defaults.Color, "initial color selection (random, red, green, blue, yellow)")
	shapeName := flag.String("shape", cfg.Defaults.Shape, "initial shape selection (square, star)")
	themeName := flag.String("theme", "", "color theme to use (default, dark, high_contrast)")
	copyAlerts := flag.Bool("notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	flag.Parse()

	colorChoice, err := stamp.ParseColorChoice(*colorName)
	if err != nil {
		log.Fatal(err)
	}
	shapeChoice, err := stamp.ParseShapeChoice(*shapeName)
	if err != nil {
		log.Fatal(err)
	}

	name := *themeName
	if name == "" {
		name = os.Getenv("LAB1GK_THEME")
	}
	if name == "" {
		name = cfg.Theme
	}
	th, ok := cfg.Themes[name]
	if !ok {
		th, err = theme.NewLoader().Load(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
			th = theme.Default()
		}
	}

	notifier := notify.New(notify.LoadPreferences())
	notifier.Enable(notify.EventCopy, *copyAlerts)

	b := board.New(
		board.WithSize(*width, *height),
		board.WithColorChoice(int(colorChoice)),
		board.WithShapeChoice(int(shapeChoice)),
		board.WithTheme(th),
		board.WithNotifier(notifier),
	)
	if err := b.Run(); err != nil {
		log.Fatal(err)
	}
}
