package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-blueprint/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid extension html", extension: "html"},
		{name: "empty extension", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "forward slash", extension: "../etc/passwd", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: "..\\windows", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: "html\x00exe", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file creation and cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<html><body>Blueprint</body></html>"
	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.Contains(filepath.Base(path), "blueprint-") {
		t.Errorf("path %q does not contain prefix 'blueprint-'", path)
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not have extension .html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}
	if string(data) != content {
		t.Errorf("file content = %q, want %q", data, content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file should be removed after cleanup, stat err = %v", err)
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, cleanup, err := fileutil.WriteTempFile("x", "")
	if !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("WriteTempFile() error = %v, want ErrExtensionEmpty", err)
	}
	if cleanup != nil {
		t.Error("cleanup should be nil on error")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: testFile, want: true},
		{name: "directory", path: tempDir, want: false},
		{name: "nonexistent", path: filepath.Join(tempDir, "missing"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"blueprint", false},
		{"./blueprint.yaml", true},
		{"configs/site.yaml", true},
		{`C:\configs\site.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestListFiles - Sorted regular-file listing
// ---------------------------------------------------------------------------

func TestListFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"b.html": "<html></html>",
		"a.md":   "# A",
		"c.pdf":  "",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	entries, err := fileutil.ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	want := []fileutil.Entry{
		{Name: "a.md", Size: 3},
		{Name: "b.html", Size: 13},
		{Name: "c.pdf", Size: 0},
	}
	if len(entries) != len(want) {
		t.Fatalf("ListFiles() returned %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestListFiles_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared.md")
	if err := os.WriteFile(target, []byte("# Shared"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	links := map[string]string{
		"linked.md":   target,
		"dangling.md": filepath.Join(dir, "missing.md"),
		"subdir":      t.TempDir(),
	}
	for name, dest := range links {
		if err := os.Symlink(dest, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
	}

	entries, err := fileutil.ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	want := []fileutil.Entry{{Name: "linked.md", Size: 8}}
	if len(entries) != len(want) || entries[0] != want[0] {
		t.Errorf("ListFiles() = %+v, want %+v", entries, want)
	}
}

func TestListFiles_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := fileutil.ListFiles(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ListFiles() error = %v, want os.ErrNotExist", err)
	}
}

func TestEnsureDirAndWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out", "nested")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	path := filepath.Join(dir, "doc.md")
	if err := fileutil.WriteFile(path, []byte("# Doc")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !fileutil.FileExists(path) {
		t.Error("written file should exist")
	}
}
