package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{Print, Screen} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			if !strings.Contains(got, "body") {
				t.Errorf("LoadStyle(%q) returned unexpected content", name)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name string
		want string
	}{
		{Print, "{{.Content}}"},
		{Screen, "Save as PDF"},
		{Footer, "social-links"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", tt.name, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("LoadTemplate(%q) does not contain %q", tt.name, tt.want)
			}
		})
	}
}

func TestEmbeddedLoader_Errors(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		load    func() error
		wantErr error
	}{
		{
			name:    "missing style",
			load:    func() error { _, err := loader.LoadStyle("nonexistent"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "missing template",
			load:    func() error { _, err := loader.LoadTemplate("nonexistent"); return err },
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "traversal in style name",
			load:    func() error { _, err := loader.LoadStyle("../print"); return err },
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "empty template name",
			load:    func() error { _, err := loader.LoadTemplate(""); return err },
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLayout(t *testing.T) {
	t.Parallel()

	layout, err := LoadLayout(NewEmbeddedLoader(), Screen)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if layout.Name != Screen || layout.Template == "" || layout.Style == "" {
		t.Errorf("LoadLayout() = %+v, want populated screen layout", layout)
	}

	// Footer has a template but no stylesheet.
	if _, err := LoadLayout(NewEmbeddedLoader(), Footer); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadLayout(footer) error = %v, want ErrStyleNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"print", false},
		{"my-style", false},
		{"", true},
		{"a/b", true},
		{`a\b`, true},
		{"print.css", true},
		{"..", true},
	}

	for _, tt := range tests {
		err := ValidateAssetName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.name, err)
		}
	}
}
