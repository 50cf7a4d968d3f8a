package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-blueprint/internal/fileutil"
)

// Selectors of the blog index contract.
const (
	gridSelector       = "#blogGrid"
	itemSelector       = ".blog-item"
	resultCountID      = "#resultCount"
	noResultsID        = "#noResults"
	displayNone        = "none"
	displayBlock       = "block"
	filterAttr         = "data-filter"
	filterValueAttr    = "data-value"
	activeClass        = "active"
	defaultFilterValue = All
)

// Stats summarizes what Prerender changed in one page.
type Stats struct {
	Includes int // footer placeholders filled
	Items    int // blog items found
}

func itemFromSelection(s *goquery.Selection) Item {
	return Item{
		ID:    s.AttrOr("id", ""),
		Topic: s.AttrOr("data-topic", ""),
		Type:  s.AttrOr("data-type", ""),
		Media: s.AttrOr("data-media", ""),
		Date:  s.AttrOr("data-date", ""),
	}
}

// Prerender injects the footer, sorts the blog grid latest first, fills the
// result count and sets the initial visibility of the no-results message.
// Pages without a blog grid only get the footer.
func Prerender(page string, in *Includer) (string, Stats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", Stats{}, fmt.Errorf("parsing page: %w", err)
	}

	var stats Stats
	if in != nil {
		stats.Includes = in.Apply(doc)
	}

	if grid := doc.Find(gridSelector).First(); grid.Length() > 0 {
		stats.Items = prerenderGrid(doc, grid)
	}

	out, err := doc.Html()
	if err != nil {
		return "", Stats{}, fmt.Errorf("serializing page: %w", err)
	}
	return out, stats, nil
}

// prerenderGrid applies the default view to the blog index.
func prerenderGrid(doc *goquery.Document, grid *goquery.Selection) int {
	selections := grid.Find(itemSelector)
	items := make([]Item, 0, selections.Length())
	nodes := make([]*goquery.Selection, 0, selections.Length())
	selections.Each(func(_ int, s *goquery.Selection) {
		items = append(items, itemFromSelection(s))
		nodes = append(nodes, s)
	})

	for _, idx := range latestOrder(items) {
		grid.AppendSelection(nodes[idx])
	}

	view := NewController(items).View()
	doc.Find(resultCountID).SetText(view.Count)

	noResults := displayNone
	if view.NoResults {
		noResults = displayBlock
	}
	setDisplay(doc.Find(noResultsID), noResults)

	doc.Find("[" + filterAttr + "]").Each(func(_ int, s *goquery.Selection) {
		if s.AttrOr(filterValueAttr, "") == defaultFilterValue {
			s.AddClass(activeClass)
		} else {
			s.RemoveClass(activeClass)
		}
	})

	return len(items)
}

// setDisplay sets the display declaration of each element's inline style,
// keeping the other declarations in place.
func setDisplay(sel *goquery.Selection, value string) {
	sel.Each(func(_ int, el *goquery.Selection) {
		var decls []string
		replaced := false
		for _, d := range strings.Split(el.AttrOr("style", ""), ";") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			prop, _, _ := strings.Cut(d, ":")
			if strings.EqualFold(strings.TrimSpace(prop), "display") {
				if replaced {
					continue
				}
				d, replaced = "display: "+value, true
			}
			decls = append(decls, d)
		}
		if !replaced {
			decls = append(decls, "display: "+value)
		}
		el.SetAttr("style", strings.Join(decls, "; "))
	})
}

// ProcessDir prerenders every .html file under srcDir into outDir, keeping
// relative paths. It returns the written files.
func ProcessDir(srcDir, outDir string, in *Includer) ([]string, error) {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outDir, err)
	}

	var written []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if abs, err := filepath.Abs(path); err == nil && abs == absOut {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path) // #nosec G304 -- walked from the site directory
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		out, _, err := Prerender(string(data), in)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}

		dest := filepath.Join(outDir, rel)
		if err := fileutil.EnsureDir(filepath.Dir(dest)); err != nil {
			return err
		}
		if err := fileutil.WriteFile(dest, []byte(out)); err != nil {
			return err
		}
		written = append(written, dest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
