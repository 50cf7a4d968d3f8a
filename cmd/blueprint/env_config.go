package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-blueprint/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // BLUEPRINT_CONFIG: config file name or path
	SectionsDir string // BLUEPRINT_SECTIONS_DIR: markdown sections directory
	OutputDir   string // BLUEPRINT_OUTPUT_DIR: output directory
	Title       string // BLUEPRINT_TITLE: frontmatter title
	Author      string // BLUEPRINT_AUTHOR: author name
	Engine      string // BLUEPRINT_ENGINE: builtin or goldmark
	Timeout     string // BLUEPRINT_TIMEOUT: PDF generation timeout
	HTMLOnly    *bool  // BLUEPRINT_HTML_ONLY: skip PDF export
	SiteDir     string // BLUEPRINT_SITE_DIR: site pages to prerender
}

// envPrefix is shared by every variable read by loadEnvConfig.
const envPrefix = "BLUEPRINT_"

// knownEnvVars lists valid BLUEPRINT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BLUEPRINT_CONFIG":       true,
	"BLUEPRINT_SECTIONS_DIR": true,
	"BLUEPRINT_OUTPUT_DIR":   true,
	"BLUEPRINT_TITLE":        true,
	"BLUEPRINT_AUTHOR":       true,
	"BLUEPRINT_ENGINE":       true,
	"BLUEPRINT_TIMEOUT":      true,
	"BLUEPRINT_HTML_ONLY":    true,
	"BLUEPRINT_SITE_DIR":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("BLUEPRINT_CONFIG"),
		SectionsDir: os.Getenv("BLUEPRINT_SECTIONS_DIR"),
		OutputDir:   os.Getenv("BLUEPRINT_OUTPUT_DIR"),
		Title:       os.Getenv("BLUEPRINT_TITLE"),
		Author:      os.Getenv("BLUEPRINT_AUTHOR"),
		Engine:      os.Getenv("BLUEPRINT_ENGINE"),
		Timeout:     os.Getenv("BLUEPRINT_TIMEOUT"),
		SiteDir:     os.Getenv("BLUEPRINT_SITE_DIR"),
	}

	// Unparsable booleans are ignored
	if v := os.Getenv("BLUEPRINT_HTML_ONLY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HTMLOnly = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized BLUEPRINT_* variables.
func warnUnknownEnvVars(r *reporter) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				r.warn(fmt.Sprintf("unknown environment variable %s (typo?)", name))
			}
		}
	}
}

// applyEnvConfig overrides config file values with set environment values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	override(&cfg.Sections.Dir, env.SectionsDir)
	override(&cfg.Output.Dir, env.OutputDir)
	override(&cfg.Document.Title, env.Title)
	override(&cfg.Document.Author, env.Author)
	override(&cfg.Render.Engine, env.Engine)
	override(&cfg.Browser.Timeout, env.Timeout)
	override(&cfg.Site.Dir, env.SiteDir)
	if env.HTMLOnly != nil {
		cfg.Output.HTMLOnly = *env.HTMLOnly
	}
}

// mergeFlags overrides config values with explicitly set flags.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	override(&cfg.Sections.Dir, f.sections)
	override(&cfg.Output.Dir, f.output)
	override(&cfg.Document.Title, f.title)
	override(&cfg.Document.Author, f.author)
	override(&cfg.Render.Engine, f.engine)
	override(&cfg.Browser.Timeout, f.timeout)
	override(&cfg.Site.Dir, f.site)
	if f.htmlOnly {
		cfg.Output.HTMLOnly = true
	}
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// printEnvConfig writes the effective environment overrides, for --verbose.
func printEnvConfig(w io.Writer, env *envConfig) {
	set := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "  %s%s=%s\n", envPrefix, name, value)
		}
	}
	set("CONFIG", env.ConfigPath)
	set("SECTIONS_DIR", env.SectionsDir)
	set("OUTPUT_DIR", env.OutputDir)
	set("TITLE", env.Title)
	set("AUTHOR", env.Author)
	set("ENGINE", env.Engine)
	set("TIMEOUT", env.Timeout)
	set("SITE_DIR", env.SiteDir)
	if env.HTMLOnly != nil {
		set("HTML_ONLY", strconv.FormatBool(*env.HTMLOnly))
	}
}
