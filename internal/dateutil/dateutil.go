// Package dateutil formats the dates stamped into combined documents,
// page chrome, and output filenames.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is the frontmatter and header date format.
const DefaultDateFormat = "YYYY-MM-DD"

// Go layouts for values that are not user configurable.
const (
	// fileStampLayout is an ISO timestamp with ':' replaced by '-'. The '.'
	// before the milliseconds is swapped in FileStamp, since Go only reads
	// "000" as fractional seconds after '.' or ','.
	fileStampLayout = "2006-01-02T15-04-05.000"
	generatedLayout = "1/2/2006, 3:04:05 PM"
)

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) or a
// preset name to a Go time layout. Text inside brackets is kept literally,
// so "[Date]: YYYY" yields "Date: 2006".
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	var out strings.Builder
	out.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			out.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &out)
		if n == 0 {
			out.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return out.String(), nil
}

// matchToken writes the Go layout for the token at the start of s and
// returns its length, or 0 when s does not start with a token.
func matchToken(s string, out *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			out.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// Format renders t with a token format or preset.
func Format(t time.Time, format string) (string, error) {
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" values; any other value is
// returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	switch {
	case !strings.HasPrefix(lower, "auto"):
		return value, nil
	case lower == "auto":
		return Format(t, DefaultDateFormat)
	case !strings.HasPrefix(lower, "auto:"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	format := value[len("auto:"):]
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	return Format(t, format)
}

// FileStamp returns a filename-safe UTC timestamp such as
// "2024-03-15T10-30-00-000Z".
func FileStamp(t time.Time) string {
	return strings.Replace(t.UTC().Format(fileStampLayout), ".", "-", 1) + "Z"
}

// Generated returns the human-readable local time printed in page footers.
func Generated(t time.Time) string {
	return t.Format(generatedLayout)
}
