package blueprint

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alnah/go-blueprint/internal/assets"
	"github.com/alnah/go-blueprint/internal/dateutil"
	"github.com/alnah/go-blueprint/internal/fileutil"
	"github.com/alnah/go-blueprint/internal/pipeline"
	"github.com/alnah/go-blueprint/internal/sections"
)

// defaultTimeout bounds the PDF page load when no deadline is set.
const defaultTimeout = 30 * time.Second

// Document holds the header fields of the combined document and pages.
// Empty fields keep their defaults.
type Document struct {
	Heading    string // page header title
	PageTitle  string // page header subtitle
	Title      string // frontmatter title
	Subtitle   string // frontmatter subtitle
	Author     string
	DateFormat string // dateutil tokens or preset, default YYYY-MM-DD
}

// Default page header fields.
const (
	DefaultHeading   = "Platform Blueprint"
	DefaultPageTitle = "Platform Blueprint"
)

// Input describes one build.
type Input struct {
	SectionsDir string
	OutputDir   string
	Basename    string // prefix of every output file
	Document    Document
	HTMLOnly    bool // skip PDF export
}

// Result lists what a build produced.
type Result struct {
	Sections []sections.Section
	Markdown []string // combined and main markdown copies
	HTMLPath string
	PDFPath  string // empty when skipped or failed
	PDFErr   error  // why the PDF is missing, nil when written or skipped
	Combined string // the combined markdown document
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	timeout   time.Duration
	assetPath string
	style     string
	engine    string
	browser   BrowserOptions
}

// Builder runs the build pipeline. Create with NewBuilder, call Build, and
// Close when done.
type Builder struct {
	cfg       builderConfig
	now       func() time.Time
	renderer  pipeline.Renderer
	assembler *pipeline.Assembler
	pdf       pdfConverter
}

// WithTimeout sets the PDF page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("blueprint: WithTimeout duration must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithAssetPath loads templates and styles from dir, falling back to the
// embedded assets for anything dir does not provide.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = dir
	}
}

// WithStyle appends css to the print and screen stylesheets.
func WithStyle(css string) Option {
	return func(b *Builder) {
		b.cfg.style = css
	}
}

// WithEngine selects the markdown engine ("builtin" or "goldmark").
func WithEngine(name string) Option {
	return func(b *Builder) {
		b.cfg.engine = name
	}
}

// WithBrowser configures browser resolution for the PDF step.
func WithBrowser(opts BrowserOptions) Option {
	return func(b *Builder) {
		b.cfg.browser = opts
	}
}

// WithClock sets the time source for dates and file stamps.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// withPDFConverter replaces the headless Chrome converter.
func withPDFConverter(c pdfConverter) Option {
	return func(b *Builder) {
		b.pdf = c
	}
}

// NewBuilder creates a Builder. The browser is not started until the first
// PDF export.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{timeout: defaultTimeout},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	renderer, err := pipeline.NewRenderer(b.cfg.engine)
	if err != nil {
		return nil, err
	}
	b.renderer = renderer

	b.assembler, err = pipeline.NewAssembler(loader, b.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("initializing page layouts: %w", err)
	}

	if b.pdf == nil {
		b.pdf = newRodConverter(b.cfg.browser, b.cfg.timeout)
	}

	return b, nil
}

// Build runs the full pipeline for input. Sections are listed before the
// output directory is created, so a build without sections writes nothing.
// A failed PDF export is reported in Result.PDFErr and the HTML deliverable
// is still written; cancellation of ctx aborts the build.
func (b *Builder) Build(ctx context.Context, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	doc := input.Document.withDefaults()

	now := b.now()
	date, err := dateutil.Format(now, doc.DateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fm := sections.DefaultFrontmatter(date)
	fm.Title, fm.Subtitle, fm.Author = doc.Title, doc.Subtitle, doc.Author
	header, err := fm.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering frontmatter: %w", err)
	}

	combined, secs, err := sections.Combine(input.SectionsDir, header)
	if err != nil {
		return nil, err
	}

	mdPaths, err := sections.Write(input.OutputDir, input.Basename, combined)
	if err != nil {
		return nil, err
	}

	fragment, err := b.renderer.Render(ctx, combined)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	res := &Result{
		Sections: secs,
		Markdown: mdPaths,
		Combined: combined,
	}
	page := pipeline.Page{
		Heading:   doc.Heading,
		Title:     doc.PageTitle,
		Author:    doc.Author,
		Date:      date,
		Generated: dateutil.Generated(now),
	}
	stamp := input.Basename + "-" + dateutil.FileStamp(now)

	if !input.HTMLOnly {
		pdfPath := filepath.Join(input.OutputDir, stamp+".pdf")
		res.PDFErr = b.exportPDF(ctx, fragment, input.SectionsDir, page, pdfPath)
		if res.PDFErr == nil {
			res.PDFPath = pdfPath
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	screen, err := b.assembler.Assemble(ctx, assets.Screen, fragment, page)
	if err != nil {
		return nil, err
	}
	res.HTMLPath = filepath.Join(input.OutputDir, stamp+".html")
	if err := fileutil.WriteFile(res.HTMLPath, []byte(screen)); err != nil {
		return nil, err
	}

	return res, nil
}

// exportPDF assembles the print page and writes its PDF rendering to path.
func (b *Builder) exportPDF(ctx context.Context, fragment, sectionsDir string, page pipeline.Page, path string) error {
	// The print page is loaded from a temp file: anchor section-relative assets.
	fragment, err := pipeline.RewriteRelativePaths(fragment, sectionsDir)
	if err != nil {
		return fmt.Errorf("rewriting relative paths: %w", err)
	}

	printPage, err := b.assembler.Assemble(ctx, assets.Print, fragment, page)
	if err != nil {
		return err
	}

	pdf, err := b.pdf.ToPDF(ctx, printPage)
	if err != nil {
		return fmt.Errorf("converting to PDF: %w", err)
	}

	return fileutil.WriteFile(path, pdf)
}

// Close releases resources (headless Chrome browser).
func (b *Builder) Close() error {
	if b.pdf != nil {
		return b.pdf.Close()
	}
	return nil
}

// withDefaults fills empty document fields.
func (d Document) withDefaults() Document {
	setDefault(&d.Heading, DefaultHeading)
	setDefault(&d.PageTitle, DefaultPageTitle)
	setDefault(&d.Title, sections.DefaultTitle)
	setDefault(&d.Subtitle, sections.DefaultSubtitle)
	setDefault(&d.Author, sections.DefaultAuthor)
	setDefault(&d.DateFormat, dateutil.DefaultDateFormat)
	return d
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// validateInput checks the fields every build needs.
func validateInput(input Input) error {
	var errs []error
	if input.SectionsDir == "" {
		errs = append(errs, errors.New("sections directory is required"))
	}
	if input.OutputDir == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if input.Basename == "" {
		errs = append(errs, errors.New("basename is required"))
	} else if filepath.Base(input.Basename) != input.Basename {
		errs = append(errs, fmt.Errorf("basename %q must not contain a path separator", input.Basename))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}
