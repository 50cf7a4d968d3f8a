// Package sections reads the markdown section files of a blueprint and
// combines them into one document behind a frontmatter header.
package sections

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blueprint/internal/fileutil"
)

// Sentinel errors for section handling.
var (
	ErrNoSections  = errors.New("no section files found")
	ErrReadSection = errors.New("reading section failed")
)

// Ext is the extension of section files.
const Ext = ".md"

// Separator follows every section but the last in a combined document.
const Separator = "---\n\n"

// Section is one markdown source file.
type Section struct {
	Name string // file name, also the sort key
	Path string
	Size int64
}

// CombinedName is the file name of the combined copy for basename.
func CombinedName(basename string) string { return basename + "-combined.md" }

// MarkdownName is the file name of the main copy for basename.
func MarkdownName(basename string) string { return basename + Ext }

// List returns the section files of dir in lexicographic filename order.
// Only regular files ending in .md are sections; zero sections is an error.
func List(dir string) ([]Section, error) {
	entries, err := fileutil.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(entries))
	for _, e := range entries {
		if !strings.HasSuffix(e.Name, Ext) {
			continue
		}
		sections = append(sections, Section{
			Name: e.Name,
			Path: filepath.Join(dir, e.Name),
			Size: e.Size,
		})
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSections, dir)
	}
	return sections, nil
}

// Read loads the content of every section, in order. The first failure
// aborts the whole read.
func Read(sections []Section) ([]string, error) {
	contents := make([]string, 0, len(sections))
	for _, s := range sections {
		data, err := os.ReadFile(s.Path) // #nosec G304 -- path listed from the sections directory
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadSection, s.Name, err)
		}
		contents = append(contents, string(data))
	}
	return contents, nil
}

// Join builds a combined document: the frontmatter, a blank line, then each
// section followed by a newline and Separator, without the final Separator.
func Join(frontmatter string, contents []string) string {
	var b strings.Builder

	size := len(frontmatter) + 1
	for _, c := range contents {
		size += len(c) + 1 + len(Separator)
	}
	b.Grow(size)

	b.WriteString(frontmatter)
	for i, c := range contents {
		if i == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c)
		b.WriteByte('\n')
		b.WriteString(Separator)
	}

	if len(contents) == 0 {
		return b.String()
	}
	return strings.TrimSuffix(b.String(), Separator)
}

// Combine lists, reads and joins the sections of dir.
func Combine(dir, frontmatter string) (string, []Section, error) {
	sections, err := List(dir)
	if err != nil {
		return "", nil, err
	}
	contents, err := Read(sections)
	if err != nil {
		return "", nil, err
	}
	return Join(frontmatter, contents), sections, nil
}

// Write stores doc as <basename>-combined.md and <basename>.md in outDir,
// creating outDir when needed. It returns the written paths.
func Write(outDir, basename, doc string) ([]string, error) {
	if err := fileutil.EnsureDir(outDir); err != nil {
		return nil, err
	}

	paths := []string{
		filepath.Join(outDir, CombinedName(basename)),
		filepath.Join(outDir, MarkdownName(basename)),
	}
	for _, p := range paths {
		if err := fileutil.WriteFile(p, []byte(doc)); err != nil {
			return nil, err
		}
	}
	return paths, nil
}
