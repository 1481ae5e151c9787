package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-grid/internal/gridfile"
)

// solution is the printed result of arranging one layout file.
type solution struct {
	File     string      `json:"file" yaml:"file"`
	Width    int         `json:"width" yaml:"width"`
	Height   int         `json:"height" yaml:"height"`
	Required size        `json:"required" yaml:"required"`
	Columns  []int       `json:"columns" yaml:"columns,flow"`
	Rows     []int       `json:"rows" yaml:"rows,flow"`
	Children []childRect `json:"children" yaml:"children"`
}

type size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type childRect struct {
	Name   string `json:"name" yaml:"name"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// solveFile loads and arranges one layout file.
func solveFile(path string, width, height int) (*solution, error) {
	l, err := gridfile.Open(path)
	if err != nil {
		return nil, err
	}
	a := l.Arrange(width, height)

	s := &solution{
		File:     path,
		Width:    a.Bounds.Width,
		Height:   a.Bounds.Height,
		Required: size{Width: a.Required.Width, Height: a.Required.Height},
		Columns:  absolute(a.Columns, a.Content.X),
		Rows:     absolute(a.Rows, a.Content.Y),
		Children: make([]childRect, 0, len(l.Boxes)),
	}
	for _, b := range l.Boxes {
		s.Children = append(s.Children, childRect{
			Name:   b.Name,
			X:      b.Rect.X,
			Y:      b.Rect.Y,
			Width:  b.Rect.Width,
			Height: b.Rect.Height,
		})
	}
	return s, nil
}

// absolute shifts slot offsets from content space into layout space.
func absolute(offsets []int, origin int) []int {
	out := make([]int, len(offsets))
	for i, o := range offsets {
		out[i] = o + origin
	}
	return out
}

// runSolve implements the solve subcommand.
// Files are solved concurrently; results print in argument order.
func runSolve(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("o", "text", "Output format: text, json or yaml")
	width := fs.Int("W", 0, "Width to arrange at (0 = file width)")
	height := fs.Int("H", 0, "Height to arrange at (0 = file height)")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	write, ok := writers[*format]
	if !ok {
		return fmt.Errorf("unknown output format %q", *format)
	}

	logger, closeLog := setupLogging(stderr, *verbose)
	defer closeLog()

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectLayoutFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout files found")
	}

	results := make([]*solution, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			logger.Debug("solving layout", "file", path)
			results[i], errs[i] = solveFile(path, *width, *height)
			return nil
		})
	}
	g.Wait()

	var solved []*solution
	var errorCount int
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", files[i], err)
			errorCount++
			continue
		}
		solved = append(solved, results[i])
	}

	if err := write(stdout, solved); err != nil {
		return err
	}
	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

var writers = map[string]func(io.Writer, []*solution) error{
	"text": writeText,
	"json": writeJSON,
	"yaml": writeYAML,
}

func writeText(w io.Writer, solved []*solution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range solved {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s: %dx%d (required %dx%d)\n",
			s.File, s.Width, s.Height, s.Required.Width, s.Required.Height)
		fmt.Fprintf(tw, "  columns:\t%s\n", joinInts(s.Columns))
		fmt.Fprintf(tw, "  rows:\t%s\n", joinInts(s.Rows))
		for _, c := range s.Children {
			fmt.Fprintf(tw, "  %s\t%d,%d\t%dx%d\n", c.Name, c.X, c.Y, c.Width, c.Height)
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, solved []*solution) error {
	if solved == nil {
		solved = []*solution{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(solved)
}

func writeYAML(w io.Writer, solved []*solution) error {
	if len(solved) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(solved); err != nil {
		return err
	}
	return enc.Close()
}

func joinInts(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	return strings.Trim(fmt.Sprint(v), "[]")
}
