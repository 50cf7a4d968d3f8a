package assets

// Names of the built-in assets.
const (
	// Print is the page chrome used as the PDF source.
	Print = "print"
	// Screen is the page chrome of the HTML deliverable.
	Screen = "screen"
	// Footer is the site footer include.
	Footer = "footer"
)

// AssetLoader defines the contract for loading CSS styles and HTML templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// Layout pairs a page template with its stylesheet.
type Layout struct {
	Name     string
	Template string
	Style    string
}

// LoadLayout loads the template and style sharing name.
func LoadLayout(loader AssetLoader, name string) (*Layout, error) {
	tmpl, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	style, err := loader.LoadStyle(name)
	if err != nil {
		return nil, err
	}
	return &Layout{Name: name, Template: tmpl, Style: style}, nil
}
