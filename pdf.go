package blueprint

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-blueprint/internal/fileutil"
	"github.com/alnah/go-blueprint/internal/hints"
	"github.com/alnah/go-blueprint/internal/pipeline"
	"github.com/alnah/go-blueprint/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow testing without a browser.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.75
)

// networkIdle is how long the page must go without requests before printing.
const networkIdle = 500 * time.Millisecond

// BrowserOptions controls how the headless browser is found and launched.
type BrowserOptions struct {
	Bin       string // explicit Chrome/Chromium path
	Download  bool   // fetch a managed Chromium when none is installed
	NoSandbox bool   // force --no-sandbox
}

// browserLocator resolves the browser binary. Its functions are swapped out
// in tests.
type browserLocator struct {
	getenv   func(string) string
	lookPath func() (string, bool)
	download func() (string, error)
}

func defaultLocator() browserLocator {
	return browserLocator{
		getenv:   os.Getenv,
		lookPath: launcher.LookPath,
		download: func() (string, error) { return launcher.NewBrowser().Get() },
	}
}

// resolve returns the browser binary: the configured path, then
// ROD_BROWSER_BIN, then a system installation, then a managed download when
// enabled.
func (l browserLocator) resolve(opts BrowserOptions) (string, error) {
	if opts.Bin != "" {
		if !fileutil.FileExists(opts.Bin) {
			return "", fmt.Errorf("%w: configured browser %q does not exist%s", ErrBrowserNotFound, opts.Bin, hints.ForBrowserNotFound())
		}
		return opts.Bin, nil
	}

	if bin := l.getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin, nil
	}

	if bin, ok := l.lookPath(); ok {
		return bin, nil
	}

	if opts.Download {
		bin, err := l.download()
		if err != nil {
			return "", fmt.Errorf("%w: downloading Chromium: %v", ErrBrowserNotFound, err)
		}
		return bin, nil
	}

	return "", fmt.Errorf("%w%s", ErrBrowserNotFound, hints.ForBrowserNotFound())
}

// noSandbox reports whether Chrome must run without its sandbox, which
// fails under most CI runners and containers.
func (l browserLocator) noSandbox(opts BrowserOptions) bool {
	return opts.NoSandbox ||
		l.getenv("ROD_NO_SANDBOX") == "1" ||
		hints.InCI() ||
		hints.IsInContainer()
}

// rodRenderer implements pdfRenderer using go-rod.
// The browser is launched on the first render and reused until Close.
type rodRenderer struct {
	opts     BrowserOptions
	locator  browserLocator
	timeout  time.Duration
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(opts BrowserOptions, timeout time.Duration) *rodRenderer {
	return &rodRenderer{opts: opts, locator: defaultLocator(), timeout: timeout}
}

// ensureBrowser lazily resolves, launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	bin, err := r.locator.resolve(r.opts)
	if err != nil {
		return err
	}

	l := launcher.New().Bin(bin).Headless(true)
	if r.locator.noSandbox(r.opts) {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.kill()
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	r.browser = browser
	return nil
}

// Close releases browser resources and kills the browser process group.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.kill()
	return err
}

func (r *rodRenderer) kill() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome, waits for the
// load event and network idle, and prints it to PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	// Timeout from context deadline or the configured default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	blank, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer blank.Close()

	page := blank.Context(ctx).Timeout(timeout)
	waitIdle := page.WaitRequestIdle(networkIdle, nil, nil, nil)

	if err := page.Navigate(pipeline.FileURL(filePath)); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}
	waitIdle()

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions returns US Letter print options with 0.75in margins.
// A @page rule in the print stylesheet takes precedence.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(marginInches),
		MarginBottom:      floatPtr(marginInches),
		MarginLeft:        floatPtr(marginInches),
		MarginRight:       floatPtr(marginInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
}

// newRodConverter creates a rodConverter with the production renderer.
func newRodConverter(opts BrowserOptions, timeout time.Duration) *rodConverter {
	return &rodConverter{renderer: newRodRenderer(opts, timeout)}
}

// ToPDF writes htmlContent to a temporary file and renders it to PDF bytes.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
