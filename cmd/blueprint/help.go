package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blueprint [platform-blueprint|combined|all]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Combine the markdown sections, render them to HTML, and export a PDF")
	fmt.Fprintln(w, "when a Chrome or Chromium browser is available. All targets run the")
	fmt.Fprintln(w, "same build; the default is platform-blueprint.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -s, --sections <dir>      Markdown sections directory (default: platform-blueprint)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: blueprint-output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --site <dir>          Prerender site pages into <output>/site")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Frontmatter title")
	fmt.Fprintln(w, "      --author <s>          Author name")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: builtin, goldmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (default: 30s)")
	fmt.Fprintln(w, "      --html-only           Skip PDF export")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLUEPRINT_CONFIG, BLUEPRINT_SECTIONS_DIR, BLUEPRINT_OUTPUT_DIR,")
	fmt.Fprintln(w, "  BLUEPRINT_TITLE, BLUEPRINT_AUTHOR, BLUEPRINT_ENGINE, BLUEPRINT_TIMEOUT,")
	fmt.Fprintln(w, "  BLUEPRINT_HTML_ONLY, BLUEPRINT_SITE_DIR override the config file.")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN selects the browser; ROD_NO_SANDBOX=1 for Docker/CI.")
}
