package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/snajper102/Lab1GK/internal/stamp"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fmt.Fprintln(os.Stdout, "available colors (* marks the default color):")
	def := c.root.config.Defaults.Color
	for _, choice := range stamp.Colors() {
		marker := " "
		if choice.String() == def {
			marker = "*"
		}
		if col, ok := choice.Fixed(); ok {
			hex := fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
			block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
			fmt.Fprintf(os.Stdout, "%s %-8s %s %s\n", marker, choice, hex, block)
		} else {
			fmt.Fprintf(os.Stdout, "%s %-8s (new color every stamp)\n", marker, choice)
		}
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type shapesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseShapesCmd(args []string, r *root) (*shapesCmd, error) {
	fs := flag.NewFlagSet("shapes", flag.ExitOnError)
	cmd := &shapesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *shapesCmd) Run() error {
	fmt.Fprintln(os.Stdout, "available shapes (* marks the default shape):")
	def := c.root.config.Defaults.Shape
	for _, choice := range stamp.Shapes() {
		marker := " "
		if choice.String() == def {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, choice)
	}
	return nil
}

func (c *shapesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
