package main

import (
	"flag"
	"fmt"

	"github.com/snajper102/Lab1GK/internal/board"
	"github.com/snajper102/Lab1GK/internal/stamp"
)

// sketchCmd opens the interactive drawing window.
type sketchCmd struct {
	width  int
	height int
	color  stamp.ColorChoice
	shape  stamp.ShapeChoice
	seed   int64
	seeded bool
	debug  bool
	*root
	fs *flag.FlagSet
}

func (s *sketchCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	s := &sketchCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)

	cfg := r.config
	var colorName, shapeName string
	fs.IntVar(&s.width, "width", cfg.Canvas.Width, "drawing surface width in pixels")
	fs.IntVar(&s.height, "height", cfg.Canvas.Height, "drawing surface height in pixels")
	fs.StringVar(&colorName, "color", cfg.Defaults.Color, "initial color selection (random, red, green, blue, yellow)")
	fs.StringVar(&shapeName, "shape", cfg.Defaults.Shape, "initial shape selection (square, star)")
	fs.Int64Var(&s.seed, "seed", 0, "seed for the random color generator (0 means time-based)")
	fs.BoolVar(&s.debug, "debug", false, "log drag sessions and stamps")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: s}
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("surface dimensions must be positive")
	}

	var err error
	s.color, err = stamp.ParseColorChoice(colorName)
	if err != nil {
		return nil, err
	}
	s.shape, err = stamp.ParseShapeChoice(shapeName)
	if err != nil {
		return nil, err
	}
	s.seeded = seedSet(fs)
	return s, nil
}

func seedSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

func (s *sketchCmd) Run() error {
	opts := []board.Option{
		board.WithSize(s.width, s.height),
		board.WithColorChoice(int(s.color)),
		board.WithShapeChoice(int(s.shape)),
		board.WithTheme(s.root.activeTheme),
		board.WithNotifier(s.root.notifier),
		board.WithDebug(s.debug),
	}
	if s.seeded {
		opts = append(opts, board.WithSeed(s.seed))
	}
	return board.New(opts...).Run()
}
