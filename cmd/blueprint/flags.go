package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errInvalidFlags wraps flag parsing failures.
var errInvalidFlags = errors.New("invalid flags")

// commonFlags holds the output verbosity flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds the flags that override configuration values.
type buildFlags struct {
	common   commonFlags
	sections string
	output   string
	title    string
	author   string
	timeout  string
	engine   string
	site     string
	htmlOnly bool
	help     bool
	version  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseFlags parses the command line and returns the positional args.
func parseFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("blueprint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.sections, "sections", "s", "", "directory of markdown sections")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.title, "title", "", "frontmatter title")
	fs.StringVar(&f.author, "author", "", "frontmatter and page author")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: builtin, goldmark")
	fs.StringVar(&f.site, "site", "", "site directory to prerender into <output>/site")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		printUsage(stderr)
		return nil, nil, fmt.Errorf("%w: %v", errInvalidFlags, err)
	}

	return f, fs.Args(), nil
}
