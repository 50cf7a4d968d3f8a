// Package pipeline turns Markdown section sources into HTML.
//
// Rendering happens in two passes. The first pass splits normalized lines
// into blocks (headings, fenced code, tables, lists, quotes, rules, raw
// HTML and paragraphs). The second pass renders inline spans inside each
// block. A goldmark-backed engine is available as an alternative to the
// built-in line renderer.
//
// The Assembler wraps a rendered fragment in the print or screen page
// chrome. PDF export is handled by the root blueprint package.
package pipeline
