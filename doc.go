// Package blueprint builds the platform blueprint: it combines a directory of
// markdown sections into one document, renders it to HTML, and exports a PDF
// through headless Chrome when a browser is available.
//
// # Quick Start
//
//	b, err := blueprint.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	res, err := b.Build(ctx, blueprint.Input{
//	    SectionsDir: "platform-blueprint",
//	    OutputDir:   "blueprint-output",
//	    Basename:    "platform-blueprint",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.PDFErr != nil {
//	    log.Printf("PDF skipped: %v", res.PDFErr)
//	}
//
// # Build Pipeline
//
//  1. Section listing and combination behind a YAML frontmatter header
//  2. Markdown copies written to the output directory
//  3. Markdown to HTML rendering (builtin line renderer or Goldmark)
//  4. Page assembly with the print and screen layouts
//  5. PDF rendering via headless Chrome (go-rod)
//  6. HTML deliverable written next to the PDF
//
// A PDF failure never fails the build: it is reported in Result.PDFErr and
// the HTML deliverable is still written.
//
// # Configuration
//
//	b, err := blueprint.NewBuilder(
//	    blueprint.WithTimeout(2 * time.Minute),
//	    blueprint.WithEngine("goldmark"),
//	    blueprint.WithAssetPath("/path/to/custom/assets"),
//	    blueprint.WithBrowser(blueprint.BrowserOptions{Download: true}),
//	)
//
// # Browser Resolution
//
// The PDF step looks for Chrome in this order: BrowserOptions.Bin, the
// ROD_BROWSER_BIN environment variable, the system installation found by
// launcher.LookPath, and finally a managed Chromium download when
// BrowserOptions.Download is set. Set ROD_NO_SANDBOX=1 in containers.
package blueprint
