// Package config loads the YAML build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-blueprint/internal/dateutil"
	"github.com/alnah/go-blueprint/internal/fileutil"
	"github.com/alnah/go-blueprint/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 100 // author, basename
	MaxTitleLength    = 200 // heading, titles, subtitle
	MaxURLLength      = 2048
	MaxLabelLength    = 100
	MaxClassLength    = 100 // footer link icon and class lists
	MaxDurationLength = 20  // "30s", "2m"
	MaxFooterLinks    = 20
)

// Defaults for an empty configuration.
const (
	DefaultSectionsDir = "platform-blueprint"
	DefaultOutputDir   = "blueprint-output"
	DefaultBasename    = "platform-blueprint"
	DefaultHeading     = "Platform Blueprint"
	DefaultPageTitle   = "Platform Blueprint"
	DefaultTitle       = "Jack Jin - Personal Site"
	DefaultSubtitle    = "Technical Architecture Documentation"
	DefaultAuthor      = "Jack Jin"
	DefaultEngine      = "builtin"
	DefaultTimeout     = 30 * time.Second
)

// Config holds all configuration for a blueprint build.
type Config struct {
	Sections SectionsConfig `yaml:"sections"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Render   RenderConfig   `yaml:"render"`
	Browser  BrowserConfig  `yaml:"browser"`
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
}

// SectionsConfig locates the markdown section files.
type SectionsConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where and under which name outputs are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Basename string `yaml:"basename"` // prefix of every output file
	HTMLOnly bool   `yaml:"htmlOnly"` // skip PDF export
}

// DocumentConfig defines the frontmatter and page header fields.
type DocumentConfig struct {
	Heading    string `yaml:"heading"`    // page header title
	PageTitle  string `yaml:"pageTitle"`  // page header subtitle
	Title      string `yaml:"title"`      // frontmatter title
	Subtitle   string `yaml:"subtitle"`   // frontmatter subtitle
	Author     string `yaml:"author"`     // frontmatter and page header
	DateFormat string `yaml:"dateFormat"` // YYYY-MM-DD tokens or a preset
}

// RenderConfig selects the markdown engine.
type RenderConfig struct {
	Engine string `yaml:"engine"` // "builtin" or "goldmark"
}

// BrowserConfig controls the headless browser used for PDF export.
type BrowserConfig struct {
	Bin       string `yaml:"bin"`       // explicit Chrome/Chromium path
	Download  bool   `yaml:"download"`  // fetch a managed Chromium when none is installed
	NoSandbox bool   `yaml:"noSandbox"` // force --no-sandbox
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "30s"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	CSS      string `yaml:"css"`      // extra stylesheet appended to both layouts
}

// SiteConfig defines the static site pages processed after the build.
type SiteConfig struct {
	Dir   string `yaml:"dir"`   // Empty = no site processing
	Links []Link `yaml:"links"` // Empty = default footer links
}

// Link is one footer link.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
	Class string `yaml:"class"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every empty field with its default.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Sections.Dir, DefaultSectionsDir)
	setDefault(&c.Output.Dir, DefaultOutputDir)
	setDefault(&c.Output.Basename, DefaultBasename)
	setDefault(&c.Document.Heading, DefaultHeading)
	setDefault(&c.Document.PageTitle, DefaultPageTitle)
	setDefault(&c.Document.Title, DefaultTitle)
	setDefault(&c.Document.Subtitle, DefaultSubtitle)
	setDefault(&c.Document.Author, DefaultAuthor)
	setDefault(&c.Document.DateFormat, dateutil.DefaultDateFormat)
	setDefault(&c.Render.Engine, DefaultEngine)
	setDefault(&c.Browser.Timeout, DefaultTimeout.String())
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// TimeoutDuration returns the parsed browser timeout.
func (b BrowserConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout %q: %v", ErrInvalidValue, b.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"sections.dir", c.Sections.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.basename", c.Output.Basename, MaxNameLength},
		{"document.heading", c.Document.Heading, MaxTitleLength},
		{"document.pageTitle", c.Document.PageTitle, MaxTitleLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxTitleLength},
		{"document.author", c.Document.Author, MaxNameLength},
		{"document.dateFormat", c.Document.DateFormat, dateutil.MaxDateFormatLength},
		{"browser.bin", c.Browser.Bin, MaxPathLength},
		{"browser.timeout", c.Browser.Timeout, MaxDurationLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.css", c.Assets.CSS, MaxPathLength},
		{"site.dir", c.Site.Dir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(c.Site.Links) > MaxFooterLinks {
		return fmt.Errorf("%w: site.links has %d entries (max %d)", ErrInvalidValue, len(c.Site.Links), MaxFooterLinks)
	}
	for i, link := range c.Site.Links {
		if err := validateLink(i, link); err != nil {
			return err
		}
	}

	if c.Output.Basename != "" && (fileutil.IsFilePath(c.Output.Basename) || strings.Contains(c.Output.Basename, "..")) {
		return fmt.Errorf("%w: output.basename %q must be a plain file name", ErrInvalidValue, c.Output.Basename)
	}

	switch strings.ToLower(c.Render.Engine) {
	case "", "builtin", "goldmark":
		// valid
	default:
		return fmt.Errorf("%w: render.engine %q (must be builtin or goldmark)", ErrInvalidValue, c.Render.Engine)
	}

	if c.Document.DateFormat != "" {
		if _, err := dateutil.Layout(c.Document.DateFormat); err != nil {
			return fmt.Errorf("document.dateFormat: %w", err)
		}
	}

	if _, err := c.Browser.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

func validateLink(i int, link Link) error {
	prefix := fmt.Sprintf("site.links[%d]", i)
	if link.URL == "" {
		return fmt.Errorf("%w: %s.url is required", ErrInvalidValue, prefix)
	}
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{prefix + ".label", link.Label, MaxLabelLength},
		{prefix + ".url", link.URL, MaxURLLength},
		{prefix + ".icon", link.Icon, MaxClassLength},
		{prefix + ".class", link.Class, MaxClassLength},
	}
	for _, c := range checks {
		if err := validateFieldLength(c.name, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Empty fields get their defaults. Returns error if the file is not found
// (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-blueprint/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-blueprint", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchPaths lists where a config name is looked up, for hints.
func SearchPaths(name string) []string {
	paths := []string{name + ".yaml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, "go-blueprint", name+".yaml"))
	}
	return paths
}
