package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/grindlemire/go-grid/internal/gridfile"
)

// runCheck implements the check subcommand.
// It loads and validates layout files without arranging them, reporting
// every broken file.
func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
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

	if *verbose {
		fmt.Fprintf(stdout, "Checking %d layout file(s)\n", len(files))
	}

	failed := 0
	for _, path := range files {
		if *verbose {
			fmt.Fprintf(stdout, "Checking %s\n", path)
		}

		l, err := gridfile.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		cols, rows := l.Container.Size()
		logger.Debug("layout ok", "file", path, "columns", cols, "rows", rows, "children", len(l.Boxes))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) had errors", failed)
	}

	if *verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(files))
	}

	return nil
}
