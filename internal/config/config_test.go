package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-blueprint/internal/dateutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	checks := []struct {
		field, got, want string
	}{
		{"sections.dir", cfg.Sections.Dir, "platform-blueprint"},
		{"output.dir", cfg.Output.Dir, "blueprint-output"},
		{"output.basename", cfg.Output.Basename, "platform-blueprint"},
		{"document.heading", cfg.Document.Heading, "Platform Blueprint"},
		{"document.title", cfg.Document.Title, "Jack Jin - Personal Site"},
		{"document.subtitle", cfg.Document.Subtitle, "Technical Architecture Documentation"},
		{"document.author", cfg.Document.Author, "Jack Jin"},
		{"document.dateFormat", cfg.Document.DateFormat, dateutil.DefaultDateFormat},
		{"render.engine", cfg.Render.Engine, "builtin"},
		{"browser.timeout", cfg.Browser.Timeout, "30s"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if cfg.Output.HTMLOnly || cfg.Browser.Download || cfg.Assets.BasePath != "" || cfg.Site.Dir != "" {
		t.Errorf("optional features should be off by default: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Fatalf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "goldmark engine", mutate: func(c *Config) { c.Render.Engine = "Goldmark" }},
		{name: "unknown engine", mutate: func(c *Config) { c.Render.Engine = "pandoc" }, wantErr: ErrInvalidValue},
		{name: "author too long", mutate: func(c *Config) { c.Document.Author = strings.Repeat("a", MaxNameLength+1) }, wantErr: ErrFieldTooLong},
		{name: "heading too long", mutate: func(c *Config) { c.Document.Heading = strings.Repeat("h", MaxTitleLength+1) }, wantErr: ErrFieldTooLong},
		{name: "basename with separator", mutate: func(c *Config) { c.Output.Basename = "../out" }, wantErr: ErrInvalidValue},
		{name: "invalid date format", mutate: func(c *Config) { c.Document.DateFormat = "[YYYY" }, wantErr: dateutil.ErrInvalidDateFormat},
		{name: "bad timeout", mutate: func(c *Config) { c.Browser.Timeout = "soon" }, wantErr: ErrInvalidValue},
		{name: "negative timeout", mutate: func(c *Config) { c.Browser.Timeout = "-5s" }, wantErr: ErrInvalidValue},
		{name: "footer link without url", mutate: func(c *Config) { c.Site.Links = []Link{{Label: "x"}} }, wantErr: ErrInvalidValue},
		{
			name:    "footer link label too long",
			mutate:  func(c *Config) { c.Site.Links = []Link{{URL: "https://x", Label: strings.Repeat("l", MaxLabelLength+1)}} },
			wantErr: ErrFieldTooLong,
		},
		{name: "too many footer links", mutate: func(c *Config) { c.Site.Links = make([]Link, MaxFooterLinks+1) }, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBrowserConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", DefaultTimeout},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
	}

	for _, tt := range tests {
		got, err := BrowserConfig{Timeout: tt.timeout}.TimeoutDuration()
		if err != nil {
			t.Errorf("TimeoutDuration(%q) error = %v", tt.timeout, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimeoutDuration(%q) = %v, want %v", tt.timeout, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `sections:
  dir: docs/sections
document:
  author: "Ada Lovelace"
render:
  engine: goldmark
browser:
  download: true
  timeout: 1m
site:
  dir: site
  links:
    - label: GitHub
      url: https://github.com/example
      icon: fab fa-github
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Sections.Dir != "docs/sections" {
			t.Errorf("Sections.Dir = %q", cfg.Sections.Dir)
		}
		if cfg.Document.Author != "Ada Lovelace" {
			t.Errorf("Document.Author = %q", cfg.Document.Author)
		}
		if cfg.Document.Title != DefaultTitle {
			t.Errorf("Document.Title = %q, want default", cfg.Document.Title)
		}
		if cfg.Output.Dir != DefaultOutputDir {
			t.Errorf("Output.Dir = %q, want default", cfg.Output.Dir)
		}
		if cfg.Render.Engine != "goldmark" || !cfg.Browser.Download {
			t.Errorf("render/browser = %+v %+v", cfg.Render, cfg.Browser)
		}
		if d, _ := cfg.Browser.TimeoutDuration(); d != time.Minute {
			t.Errorf("timeout = %v, want 1m", d)
		}
		if len(cfg.Site.Links) != 1 || cfg.Site.Links[0].Icon != "fab fa-github" {
			t.Errorf("Site.Links = %+v", cfg.Site.Links)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(writeConfig(t, "sections: [unclosed")); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(writeConfig(t, "watermark:\n  enabled: true\n")); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation runs after loading", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(writeConfig(t, "render:\n  engine: pandoc\n")); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "team.yml"), []byte("output:\n  dir: team-out\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(team) error = %v", err)
	}
	if cfg.Output.Dir != "team-out" {
		t.Errorf("Output.Dir = %q, want team-out", cfg.Output.Dir)
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(absent) error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error %q should list tried paths", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("blueprint")
	if len(paths) == 0 || paths[0] != "blueprint.yaml" {
		t.Fatalf("SearchPaths() = %v", paths)
	}
	for _, p := range paths[1:] {
		if !strings.Contains(p, "go-blueprint") {
			t.Errorf("user path %q should live under go-blueprint", p)
		}
	}
}
