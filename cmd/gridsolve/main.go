// Package main provides the CLI tool for solving grid layout files.
//
// Usage:
//
//	gridsolve solve [options] [path...]   Print slot offsets and child rectangles
//	gridsolve check [path...]             Validate layout files
//	gridsolve render [options] file       Draw the arranged grid
//	gridsolve help                        Show help
//
// Examples:
//
//	gridsolve solve ./...                Solve every layout file under the current directory
//	gridsolve solve -o json form.yaml    Print the solution as JSON
//	gridsolve render -W 80 form.toml     Draw the grid 80 columns wide
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/grid"
)

const version = "0.1.0"

const usage = `gridsolve - solve grid layout description files

Usage:
  gridsolve <command> [options] [path...]

Commands:
  solve       Arrange layout files and print offsets and rectangles
  check       Validate layout files without arranging them
  render      Draw an arranged layout file with box characters
  version     Print version information
  help        Show this help message

Options:
  -o format   Output format for solve: text, json or yaml (default text)
  -W width    Arrange at this width instead of the file's
  -H height   Arrange at this height instead of the file's
  -border s   Border style for render: single, double, rounded or ascii
  -guides     Draw slot boundaries when rendering
  -v          Verbose output

Layout files end in .yaml, .yml or .toml. Set GRID_DEBUG to a file path to
append debug logs to it.

Examples:
  gridsolve solve ./...               Solve all layout files recursively
  gridsolve solve -o yaml form.yaml   Print the solution as YAML
  gridsolve solve -W 120 form.yaml    Arrange 120 units wide
  gridsolve check ./layouts           Validate every file in a directory
  gridsolve render -guides form.toml  Draw the grid with slot guides
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "solve":
		err = runSolve(args, os.Stdout, os.Stderr)
	case "check":
		err = runCheck(args, os.Stdout, os.Stderr)
	case "render":
		err = runRender(args, os.Stdout, os.Stderr)
	case "version":
		fmt.Printf("gridsolve version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes grid and command logs to stderr and, when GRID_DEBUG
// is set, to the debug file. The returned function closes the file.
func setupLogging(stderr io.Writer, verbose bool) (*slog.Logger, func()) {
	logger, closeLog, err := debug.Setup(stderr, verbose)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	grid.SetLogger(logger)
	return logger, func() {
		grid.SetLogger(nil)
		closeLog()
	}
}
