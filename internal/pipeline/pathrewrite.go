package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RewriteRelativePaths turns relative img[src] and a[href] values of an HTML
// fragment into file:// URLs rooted at sourceDir. The PDF source page is
// loaded from a temporary file, so section assets would not resolve
// otherwise. An empty sourceDir returns the fragment unchanged.
//
// URLs, anchors, absolute paths and paths escaping sourceDir are kept as is.
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" || !strings.ContainsAny(fragment, "<") {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", sourceDir, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	rewritten := 0
	rewrite := func(attr string) func(int, *goquery.Selection) {
		return func(_ int, s *goquery.Selection) {
			val, _ := s.Attr(attr)
			if !isRelativePath(val) {
				return
			}
			absPath := filepath.Join(absSourceDir, val)
			if !isPathUnderDir(absPath, absSourceDir) {
				return
			}
			s.SetAttr(attr, FileURL(absPath))
			rewritten++
		}
	}
	doc.Find("img[src]").Each(rewrite("src"))
	doc.Find("a[href]").Each(rewrite("href"))

	if rewritten == 0 {
		return fragment, nil
	}
	return doc.Find("body").Html()
}

// isRelativePath reports whether path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || filepath.IsAbs(path) {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// isPathUnderDir checks that absPath stays inside dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// FileURL converts an absolute path to a file:// URL.
func FileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
