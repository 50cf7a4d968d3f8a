package pipeline

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\sections`
	}
	return "/sections"
}

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	dir := testSourceDir()

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      string
	}{
		{name: "relative image with dot slash", html: `<img src="./img/arch.png">`, sourceDir: dir, want: `src="file://`},
		{name: "relative image", html: `<p><img src="img/arch.png"></p>`, sourceDir: dir, want: `src="file://`},
		{name: "relative link", html: `<a href="appendix.html">A</a>`, sourceDir: dir, want: `href="file://`},
		{name: "absolute path kept", html: `<img src="/abs/logo.png">`, sourceDir: dir, want: `src="/abs/logo.png"`},
		{name: "https kept", html: `<img src="https://example.com/a.png">`, sourceDir: dir, want: `src="https://example.com/a.png"`},
		{name: "data URI kept", html: `<img src="data:image/png;base64,AAA">`, sourceDir: dir, want: `src="data:image/png;base64,AAA"`},
		{name: "protocol-relative kept", html: `<img src="//cdn.example.com/a.png">`, sourceDir: dir, want: `src="//cdn.example.com/a.png"`},
		{name: "mailto kept", html: `<a href="mailto:me@example.com">me</a>`, sourceDir: dir, want: `href="mailto:me@example.com"`},
		{name: "anchor kept", html: `<a href="#stack">Stack</a>`, sourceDir: dir, want: `href="#stack"`},
		{name: "script src kept", html: `<script src="./app.js"></script>`, sourceDir: dir, want: `src="./app.js"`},
		{name: "empty source dir", html: `<img src="./a.png">`, sourceDir: "", want: `src="./a.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteRelativePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePaths_UnchangedFragmentIsReturnedVerbatim(t *testing.T) {
	t.Parallel()

	fragment := "<h1>Intro</h1>\n<hr>\n<p>No assets here.</p>"
	got, err := RewriteRelativePaths(fragment, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if got != fragment {
		t.Errorf("RewriteRelativePaths() = %q, want %q", got, fragment)
	}
}

func TestRewriteRelativePaths_PathTraversal(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"../secret.png", "img/../../secret.png"} {
		got, err := RewriteRelativePaths(`<img src="`+src+`">`, testSourceDir())
		if err != nil {
			t.Fatalf("RewriteRelativePaths(%q) error = %v", src, err)
		}
		if strings.Contains(got, "file://") {
			t.Errorf("RewriteRelativePaths(%q) = %q, escaping path must not be rewritten", src, got)
		}
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	dir := filepath.FromSlash("/sections")
	tests := []struct {
		path string
		want bool
	}{
		{filepath.FromSlash("/sections/img/a.png"), true},
		{filepath.FromSlash("/sections"), true},
		{filepath.FromSlash("/sections-other/a.png"), false},
		{filepath.FromSlash("/etc/passwd"), false},
	}

	for _, tt := range tests {
		if got := isPathUnderDir(tt.path, dir); got != tt.want {
			t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", tt.path, dir, got, tt.want)
		}
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix path layout")
	}
	if got, want := FileURL("/sections/my image.png"), "file:///sections/my%20image.png"; got != want {
		t.Errorf("FileURL() = %q, want %q", got, want)
	}
}
