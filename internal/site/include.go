package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-blueprint/internal/assets"
)

// FooterSelector matches the elements that receive the shared footer.
const FooterSelector = `[data-include*="footer.html"]`

// Link is one entry of the footer's social links.
type Link struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Class string `yaml:"class,omitempty"`
}

// DefaultLinks are the footer links of the portfolio.
func DefaultLinks() []Link {
	return []Link{
		{URL: "https://www.accenture.com/", Label: "Accenture", Icon: "fas fa-building", Class: "employer-link"},
		{URL: "https://www.linkedin.com/in/jackjin", Label: "Connect on LinkedIn", Icon: "fab fa-linkedin"},
		{URL: "https://github.com/jackzhaojin", Label: "GitHub", Icon: "fab fa-github"},
	}
}

// RenderFooter executes the footer template with links.
func RenderFooter(loader assets.AssetLoader, links []Link) (string, error) {
	src, err := loader.LoadTemplate(assets.Footer)
	if err != nil {
		return "", fmt.Errorf("loading footer template: %w", err)
	}
	tmpl, err := template.New(assets.Footer).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing footer template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Links []Link }{links}); err != nil {
		return "", fmt.Errorf("rendering footer: %w", err)
	}
	return buf.String(), nil
}

// Includer replaces the content of footer placeholders.
type Includer struct {
	footer string
}

// NewIncluder creates an Includer injecting footer.
func NewIncluder(footer string) *Includer {
	return &Includer{footer: footer}
}

// Apply fills every matching placeholder of doc and returns how many were
// filled.
func (in *Includer) Apply(doc *goquery.Document) int {
	targets := doc.Find(FooterSelector)
	targets.SetHtml(in.footer)
	return targets.Length()
}
