package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-blueprint/internal/yamlutil"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocess prepares Markdown for rendering: line endings become \n and
// a leading YAML frontmatter block is removed.
func Preprocess(content string) string {
	content = normalizeLineEndings(content)
	if _, body, ok := yamlutil.SplitFrontmatter(content); ok {
		content = body
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// splitLines splits normalized content into lines without the trailing
// empty element produced by a final newline.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
