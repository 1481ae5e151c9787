package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-grid/internal/grid"
	"github.com/grindlemire/go-grid/internal/gridfile"
	"github.com/grindlemire/go-grid/internal/render"
)

// runRender implements the render subcommand.
// Without -W and a file width, the grid fills the terminal width when
// stdout is a terminal, and its natural width otherwise.
func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("W", 0, "Width to arrange at (0 = file or terminal width)")
	height := fs.Int("H", 0, "Height to arrange at (0 = file height)")
	borderName := fs.String("border", "single", "Border style: single, double, rounded or ascii")
	guides := fs.Bool("guides", false, "Draw slot boundaries")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render takes exactly one layout file")
	}

	border, err := render.ParseBorder(*borderName)
	if err != nil {
		return err
	}

	_, closeLog := setupLogging(stderr, *verbose)
	defer closeLog()

	l, err := gridfile.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	w := *width
	if w <= 0 && l.File.Width <= 0 {
		if f, ok := stdout.(*os.File); ok {
			if tw, ok := terminalWidth(int(f.Fd())); ok {
				w = tw
			}
		}
	}

	a := l.Arrange(w, *height)
	names := make(map[grid.Managed]string, len(l.Boxes))
	for _, b := range l.Boxes {
		names[b] = b.Name
	}
	out := render.Arrangement(a, func(m grid.Managed) string { return names[m] }, render.Options{
		Border: border,
		Guides: *guides,
	})
	_, err = io.WriteString(stdout, out)
	return err
}
