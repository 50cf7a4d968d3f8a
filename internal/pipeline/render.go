package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
)

// Engine names accepted by NewRenderer.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine indicates an unsupported render engine name.
var ErrUnknownEngine = errors.New("unknown render engine")

// Renderer converts Markdown to an HTML fragment.
type Renderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// NewRenderer returns the renderer for engine. An empty name selects the
// built-in line renderer.
func NewRenderer(engine string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineBuiltin:
		return LineRenderer{}, nil
	case EngineGoldmark:
		return NewGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrUnknownEngine, engine, EngineBuiltin, EngineGoldmark)
	}
}

// LineRenderer is the built-in two-pass Markdown renderer.
type LineRenderer struct{}

// Render implements Renderer.
func (LineRenderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Render(markdown), nil
}

// Render converts Markdown to an HTML fragment. It is deterministic and
// leaves fragments it produced unchanged when applied to them again.
func Render(markdown string) string {
	blocks := tokenize(splitLines(Preprocess(markdown)))

	parts := make([]string, 0, len(blocks))
	for i := range blocks {
		if out := blocks[i].render(); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n")
}

func (b *block) render() string {
	switch b.kind {
	case blockHeading:
		return fmt.Sprintf("<h%d>%s</h%d>", b.level, renderInline(b.lines[0]), b.level)
	case blockCode:
		return `<pre><code class="language-` + html.EscapeString(b.lang) + `">` +
			html.EscapeString(strings.Join(b.lines, "\n")) + "</code></pre>"
	case blockTable:
		return b.renderTable()
	case blockList:
		return b.renderList()
	case blockQuote:
		return "<blockquote>" + renderInline(strings.Join(b.lines, " ")) + "</blockquote>"
	case blockRule:
		return "<hr>"
	case blockHTML:
		return strings.Join(b.lines, "\n")
	default:
		text := strings.TrimSpace(strings.Join(b.lines, " "))
		if text == "" {
			return ""
		}
		return "<p>" + renderInline(text) + "</p>"
	}
}

func (b *block) renderTable() string {
	if len(b.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<table>\n")
	for i, row := range b.rows {
		tag := "td"
		if i == 0 && b.header {
			tag = "th"
		}
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<" + tag + ">" + renderInline(cell) + "</" + tag + ">")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>")
	return sb.String()
}

func (b *block) renderList() string {
	tag := "ul"
	if b.ordered {
		tag = "ol"
	}

	var sb strings.Builder
	sb.WriteString("<" + tag + ">\n")
	for _, item := range b.lines {
		sb.WriteString("<li>" + renderInline(item) + "</li>\n")
	}
	sb.WriteString("</" + tag + ">")
	return sb.String()
}
