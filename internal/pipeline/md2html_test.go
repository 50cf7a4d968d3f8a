package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "heading gets anchor id",
			input:    "# Hello World",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:     "GFM table",
			input:    "| A | B |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<th>A</th>", "<td>2</td>"},
		},
		{
			name:     "code block highlighted with classes",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
			excludes: []string{"style=\"color"},
		},
		{
			name:     "footnote",
			input:    "Text[^1]\n\n[^1]: Note",
			contains: []string{"footnote"},
		},
		{
			name:     "frontmatter stripped",
			input:    "---\ntitle: Site\n---\n# A",
			contains: []string{`<h1 id="a">A</h1>`},
			excludes: []string{"title: Site"},
		},
		{
			name:     "fragment only",
			input:    "text",
			excludes: []string{"<html", "<body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Render() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkRenderer().Render(ctx, "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}
