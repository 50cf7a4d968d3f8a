// Package yamlutil wraps YAML parsing to isolate the external dependency.
// It also owns the "---" delimited metadata block used by combined documents.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// FrontmatterDelimiter opens and closes a metadata block.
const FrontmatterDelimiter = "---"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v. Struct fields keep their declaration order.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// MarshalFrontmatter encodes v between two "---" lines.
// The result always ends with the closing delimiter and a newline.
func MarshalFrontmatter(v any) (string, error) {
	body, err := Marshal(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(body) + 8)
	b.WriteString(FrontmatterDelimiter + "\n")
	b.Write(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(FrontmatterDelimiter + "\n")
	return b.String(), nil
}

// SplitFrontmatter separates a leading metadata block from the rest of doc.
// The block must start at the first byte with a "---" line and ends at the
// next "---" line. When no block is present, ok is false and body is doc.
func SplitFrontmatter(doc string) (meta, body string, ok bool) {
	open := FrontmatterDelimiter + "\n"
	if !strings.HasPrefix(doc, open) {
		return "", doc, false
	}

	rest := doc[len(open):]
	if rest == FrontmatterDelimiter {
		return "", "", true
	}
	if strings.HasPrefix(rest, open) {
		return "", rest[len(open):], true
	}

	closing := "\n" + FrontmatterDelimiter
	search := 0
	for {
		idx := strings.Index(rest[search:], closing)
		if idx == -1 {
			return "", doc, false
		}
		end := search + idx + len(closing)
		switch {
		case end == len(rest):
			return rest[:search+idx+1], "", true
		case rest[end] == '\n':
			return rest[:search+idx+1], rest[end+1:], true
		}
		// "---" followed by more text on the same line is not a delimiter.
		search = end
	}
}
