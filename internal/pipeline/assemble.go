package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-blueprint/internal/assets"
)

// Sentinel errors for page assembly.
var (
	ErrPageRender    = errors.New("page template rendering failed")
	ErrUnknownLayout = errors.New("unknown page layout")
)

// Page holds the header and footer fields of an assembled document.
type Page struct {
	Heading   string // header title, e.g. "Platform Blueprint"
	Title     string // header subtitle
	Author    string
	Date      string
	Generated string // footer timestamp
}

// pageData is the template input: the page fields plus trusted content.
type pageData struct {
	Page
	Style   template.CSS
	Content template.HTML
}

type compiledLayout struct {
	tmpl  *template.Template
	style string
}

// Assembler wraps rendered fragments in the print or screen page chrome.
type Assembler struct {
	layouts map[string]compiledLayout
}

// NewAssembler loads and parses the print and screen layouts. extraCSS is
// appended to both stylesheets.
func NewAssembler(loader assets.AssetLoader, extraCSS string) (*Assembler, error) {
	a := &Assembler{layouts: make(map[string]compiledLayout, 2)}

	for _, name := range []string{assets.Print, assets.Screen} {
		layout, err := assets.LoadLayout(loader, name)
		if err != nil {
			return nil, fmt.Errorf("loading %s layout: %w", name, err)
		}
		tmpl, err := template.New(name).Parse(layout.Template)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}

		style := layout.Style
		if extraCSS != "" {
			style += "\n" + extraCSS
		}
		a.layouts[name] = compiledLayout{tmpl: tmpl, style: sanitizeCSS(style)}
	}

	return a, nil
}

// Assemble executes the named layout around fragment. Page fields are
// escaped by html/template; the fragment is inserted verbatim.
func (a *Assembler) Assemble(ctx context.Context, layout, fragment string, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l, ok := a.layouts[layout]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}

	var buf bytes.Buffer
	data := pageData{
		Page:    page,
		Style:   template.CSS(l.style),   // #nosec G203 -- stylesheet from embedded or configured assets
		Content: template.HTML(fragment), // #nosec G203 -- rendered by this package
	}
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
