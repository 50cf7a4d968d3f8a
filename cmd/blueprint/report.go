package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/alnah/go-blueprint/internal/fileutil"
)

// ANSI colors for status tags.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// reporter prints tagged status lines. Info and build lines go to stdout,
// warnings and errors to stderr.
type reporter struct {
	stdout  io.Writer
	stderr  io.Writer
	color   bool
	quiet   bool
	verbose bool
}

func newReporter(env *Environment, quiet, verbose bool) *reporter {
	return &reporter{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		color:   isTerminal(env.Stdout),
		quiet:   quiet,
		verbose: verbose,
	}
}

// isTerminal reports whether w is a terminal, so colors are never written
// to files or pipes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *reporter) tag(name, color string) string {
	if !r.color {
		return "[" + name + "]"
	}
	return color + "[" + name + "]" + colorReset
}

func (r *reporter) info(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.stdout, r.tag("INFO", colorBlue), msg)
}

func (r *reporter) build(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.stdout, r.tag("BUILD", colorGreen), msg)
}

func (r *reporter) warn(msg string) {
	fmt.Fprintln(r.stderr, r.tag("WARN", colorYellow), msg)
}

func (r *reporter) fail(err error) {
	fmt.Fprintln(r.stderr, r.tag("ERROR", colorRed), err)
}

// timing prints how long a step took, only with --verbose.
func (r *reporter) timing(step string, d time.Duration) {
	if !r.verbose || r.quiet {
		return
	}
	fmt.Fprintf(r.stdout, "%s %s took %v\n", r.tag("INFO", colorBlue), step, d.Round(time.Millisecond))
}

// listOutputs prints every file of dir with its human-readable size.
func (r *reporter) listOutputs(dir string) error {
	if r.quiet {
		return nil
	}

	entries, err := fileutil.ListFiles(dir)
	if err != nil {
		return err
	}

	r.info("Generated files in " + dir + ":")
	for _, e := range entries {
		fmt.Fprintf(r.stdout, "  %-48s %10s\n", e.Name, humanize.Bytes(uint64(e.Size))) // #nosec G115 -- file sizes are non-negative
	}
	return nil
}

// relPath shortens path relative to the working directory for display.
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !filepath.IsAbs(rel) && len(rel) < len(path) {
		return rel
	}
	return path
}
