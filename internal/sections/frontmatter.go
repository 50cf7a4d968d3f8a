package sections

import "github.com/alnah/go-blueprint/internal/yamlutil"

// Frontmatter is the metadata header of a combined document. The fields
// follow the pandoc title block conventions.
type Frontmatter struct {
	Title          string   `yaml:"title"`
	Subtitle       string   `yaml:"subtitle"`
	Author         string   `yaml:"author"`
	Date           string   `yaml:"date"`
	TitlePage      bool     `yaml:"titlepage"`
	TOC            bool     `yaml:"toc"`
	TOCDepth       int      `yaml:"toc-depth"`
	Geometry       string   `yaml:"geometry"`
	FontSize       string   `yaml:"fontsize"`
	HeaderIncludes []string `yaml:"header-includes"`
	ColorLinks     bool     `yaml:"colorlinks"`
	LinkColor      string   `yaml:"linkcolor"`
	URLColor       string   `yaml:"urlcolor"`
	TOCColor       string   `yaml:"toccolor"`
}

// Defaults for the frontmatter header.
const (
	DefaultTitle    = "Jack Jin - Personal Site"
	DefaultSubtitle = "Technical Architecture Documentation"
	DefaultAuthor   = "Jack Jin"
)

// DefaultFrontmatter returns the standard header dated date.
func DefaultFrontmatter(date string) Frontmatter {
	return Frontmatter{
		Title:     DefaultTitle,
		Subtitle:  DefaultSubtitle,
		Author:    DefaultAuthor,
		Date:      date,
		TitlePage: true,
		TOC:       true,
		TOCDepth:  2,
		Geometry:  "margin=1in",
		FontSize:  "11pt",
		HeaderIncludes: []string{
			`\usepackage{helvet}`,
			`\renewcommand{\familydefault}{\sfdefault}`,
			`\let\sourcesanspro\relax`,
		},
		ColorLinks: true,
		LinkColor:  "blue",
		URLColor:   "blue",
		TOCColor:   "black",
	}
}

// Render marshals f as a "---" delimited YAML block ending in a newline.
func (f Frontmatter) Render() (string, error) {
	return yamlutil.MarshalFrontmatter(f)
}
