package pipeline

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockCode
	blockTable
	blockList
	blockQuote
	blockRule
	blockHTML
)

// block is one top-level element found by the first rendering pass.
type block struct {
	kind    blockKind
	level   int    // heading level
	lang    string // code fence language
	ordered bool   // list marker kind, decided by the first item
	header  bool   // first table row is a header row
	lines   []string
	rows    [][]string
}

var (
	headingLine   = regexp.MustCompile(`^(#{1,4}) (.*)$`)
	orderedItem   = regexp.MustCompile(`^\d+\. (.*)$`)
	unorderedItem = regexp.MustCompile(`^[*-] (.*)$`)
	quoteLine     = regexp.MustCompile(`^> ?(.*)$`)
	delimiterCell = regexp.MustCompile(`^:?-+:?$`)
	htmlBlockOpen = regexp.MustCompile(`^<(/?)([A-Za-z][A-Za-z0-9]*)(?:[\s/>]|$)`)
	verbatimOpen  = regexp.MustCompile(`<(pre|script|style|textarea)(?:[\s>]|$)`)
)

// blockTags are the HTML elements that start a raw HTML block when they
// open a line.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "details": true, "dialog": true, "dd": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hr": true, "html": true, "iframe": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"script": true, "section": true, "style": true, "summary": true,
	"table": true, "tbody": true, "td": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "tr": true, "ul": true,
}

// tokenize splits normalized lines into blocks.
func tokenize(lines []string) []block {
	var blocks []block

	for i := 0; i < len(lines); {
		line := lines[i]

		var b block
		switch {
		case isBlank(line):
			i++
			continue
		case isFenceOpen(line):
			b, i = parseFence(lines, i)
		case isHTMLBlockStart(line):
			b, i = parseHTML(lines, i)
		case headingLine.MatchString(line):
			m := headingLine.FindStringSubmatch(line)
			b = block{kind: blockHeading, level: len(m[1]), lines: []string{strings.TrimSpace(m[2])}}
			i++
		case isRule(line):
			b = block{kind: blockRule}
			i++
		case isTableRow(line):
			b, i = parseTable(lines, i)
		case quoteLine.MatchString(line):
			b, i = parseQuote(lines, i)
		case isListItem(line):
			b, i = parseList(lines, i)
		default:
			b, i = parseParagraph(lines, i)
		}
		blocks = append(blocks, b)
	}

	return blocks
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func isFenceOpen(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

func isFenceClose(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "```") && strings.Trim(t, "`") == ""
}

func isRule(line string) bool {
	switch strings.TrimRight(line, " \t") {
	case "---", "***", "___":
		return true
	}
	return false
}

func isTableRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && t[0] == '|' && t[len(t)-1] == '|'
}

func isListItem(line string) bool {
	return orderedItem.MatchString(line) || unorderedItem.MatchString(line)
}

func isHTMLBlockStart(line string) bool {
	if strings.HasPrefix(line, "<!--") {
		return true
	}
	m := htmlBlockOpen.FindStringSubmatch(line)
	return m != nil && blockTags[strings.ToLower(m[2])]
}

// startsBlock reports whether line interrupts a running paragraph.
func startsBlock(line string) bool {
	return isBlank(line) ||
		isFenceOpen(line) ||
		isHTMLBlockStart(line) ||
		headingLine.MatchString(line) ||
		isRule(line) ||
		isTableRow(line) ||
		quoteLine.MatchString(line) ||
		isListItem(line)
}

// parseFence reads a fenced code block. An unclosed fence runs to the end
// of input.
func parseFence(lines []string, i int) (block, int) {
	info := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(lines[i]), "`"))
	lang := "text"
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}

	b := block{kind: blockCode, lang: lang}
	for i++; i < len(lines); i++ {
		if isFenceClose(lines[i]) {
			return b, i + 1
		}
		b.lines = append(b.lines, lines[i])
	}
	return b, i
}

// parseHTML reads a raw HTML block. The block ends at the first blank line
// that is not inside a pre, script, style or textarea element.
func parseHTML(lines []string, i int) (block, int) {
	b := block{kind: blockHTML}
	closer := ""
	if strings.HasPrefix(lines[i], "<!--") {
		closer = "-->"
	}

	for ; i < len(lines); i++ {
		line := lines[i]
		if closer == "" && isBlank(line) {
			break
		}
		b.lines = append(b.lines, line)
		closer = scanVerbatim(strings.ToLower(line), closer)
	}
	return b, i
}

// scanVerbatim tracks verbatim elements across a line and returns the
// closing sequence still pending at its end, or "" when none is open.
func scanVerbatim(lower, closer string) string {
	for {
		if closer != "" {
			idx := strings.Index(lower, closer)
			if idx == -1 {
				return closer
			}
			lower = lower[idx+len(closer):]
			closer = ""
			continue
		}

		m := verbatimOpen.FindStringSubmatchIndex(lower)
		if m == nil {
			if idx := strings.Index(lower, "<!--"); idx != -1 {
				lower = lower[idx+len("<!--"):]
				closer = "-->"
				continue
			}
			return ""
		}
		closer = "</" + lower[m[2]:m[3]]
		lower = lower[m[3]:]
	}
}

// parseTable reads consecutive pipe rows. A delimiter row directly after
// the first row marks that row as the header; delimiter rows are dropped.
func parseTable(lines []string, i int) (block, int) {
	b := block{kind: blockTable}
	seen := 0

	for ; i < len(lines) && isTableRow(lines[i]); i++ {
		cells := splitRow(lines[i])
		seen++
		if isDelimiterRow(cells) {
			if seen == 2 && len(b.rows) == 1 {
				b.header = true
			}
			continue
		}
		b.rows = append(b.rows, cells)
	}
	return b, i
}

func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	cells := strings.Split(t[1:len(t)-1], "|")
	for j, c := range cells {
		cells[j] = strings.TrimSpace(c)
	}
	return cells
}

func isDelimiterRow(cells []string) bool {
	for _, c := range cells {
		if !delimiterCell.MatchString(c) {
			return false
		}
	}
	return true
}

func parseQuote(lines []string, i int) (block, int) {
	b := block{kind: blockQuote}
	for ; i < len(lines); i++ {
		m := quoteLine.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		if text := strings.TrimSpace(m[1]); text != "" {
			b.lines = append(b.lines, text)
		}
	}
	return b, i
}

// parseList reads one run of list items sharing the marker kind of its
// first item. Blank lines between items of the same kind keep the run
// going. Indented items join the run flat; other indented lines continue
// the previous item.
func parseList(lines []string, i int) (block, int) {
	b := block{kind: blockList, ordered: orderedItem.MatchString(lines[i])}

	for i < len(lines) {
		line := lines[i]
		if text, ok := b.item(line); ok {
			b.lines = append(b.lines, strings.TrimSpace(text))
			i++
			continue
		}
		if isBlank(line) {
			j := i
			for j < len(lines) && isBlank(lines[j]) {
				j++
			}
			if j < len(lines) {
				if _, ok := b.item(lines[j]); ok {
					i = j
					continue
				}
			}
			break
		}
		if !isIndented(line) {
			break
		}
		trimmed := strings.TrimLeft(line, " \t")
		if text, ok := b.item(trimmed); ok {
			b.lines = append(b.lines, strings.TrimSpace(text))
		} else if startsBlock(trimmed) {
			break
		} else {
			last := len(b.lines) - 1
			b.lines[last] += " " + strings.TrimSpace(line)
		}
		i++
	}
	return b, i
}

// item extracts the text of a list item matching the block's marker kind.
func (b *block) item(line string) (string, bool) {
	re := unorderedItem
	if b.ordered {
		re = orderedItem
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func parseParagraph(lines []string, i int) (block, int) {
	b := block{kind: blockParagraph, lines: []string{strings.TrimSpace(lines[i])}}
	for i++; i < len(lines) && !startsBlock(lines[i]); i++ {
		b.lines = append(b.lines, strings.TrimSpace(lines[i]))
	}
	return b, i
}
