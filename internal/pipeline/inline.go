package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Inline spans are stashed behind Private Use Area markers so later rules
// cannot rewrite them.
const (
	stashOpen  = "\uE002"
	stashClose = "\uE003"
)

var (
	codeSpan    = regexp.MustCompile("`([^`]+)`")
	linkSpan    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldSpan    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicSpan  = regexp.MustCompile(`\*([^*]+)\*`)
	stashMarker = regexp.MustCompile(stashOpen + `(\d+)` + stashClose)
)

// Marker runes in the source are written as character references so they
// never collide with stash markers.
var (
	markerEscaper   = strings.NewReplacer(stashOpen, "&#xE002;", stashClose, "&#xE003;")
	markerUnescaper = strings.NewReplacer("&#xE002;", stashOpen, "&#xE003;", stashClose)
)

// escapeText HTML-escapes s, which may hold escaped marker runes.
func escapeText(s string) string {
	return markerEscaper.Replace(html.EscapeString(markerUnescaper.Replace(s)))
}

// spanStash holds rendered spans replaced by markers.
type spanStash struct {
	spans []string
}

func (s *spanStash) put(rendered string) string {
	s.spans = append(s.spans, rendered)
	return stashOpen + strconv.Itoa(len(s.spans)-1) + stashClose
}

// restore swaps markers back for their spans. A span may contain markers of
// earlier spans, so restoring repeats until nothing changes.
func (s *spanStash) restore(text string) string {
	for range len(s.spans) + 1 {
		next := stashMarker.ReplaceAllStringFunc(text, func(m string) string {
			idx, err := strconv.Atoi(m[len(stashOpen) : len(m)-len(stashClose)])
			if err != nil || idx >= len(s.spans) {
				return m
			}
			return s.spans[idx]
		})
		if next == text {
			break
		}
		text = next
	}
	return text
}

// renderInline applies code, link, bold and italic rules, in that order.
// Code span content is escaped; other text passes through so inline HTML
// keeps working.
func renderInline(text string) string {
	if !strings.ContainsAny(text, "`[*") {
		return text
	}

	text = markerEscaper.Replace(text)
	var stash spanStash

	text = codeSpan.ReplaceAllStringFunc(text, func(m string) string {
		inner := codeSpan.FindStringSubmatch(m)[1]
		return stash.put("<code>" + escapeText(inner) + "</code>")
	})

	text = linkSpan.ReplaceAllStringFunc(text, func(m string) string {
		parts := linkSpan.FindStringSubmatch(m)
		href := escapeText(strings.TrimSpace(parts[2]))
		return stash.put(`<a href="`+href+`">`) + parts[1] + stash.put("</a>")
	})

	text = boldSpan.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicSpan.ReplaceAllString(text, "<em>$1</em>")

	return stash.restore(text)
}
