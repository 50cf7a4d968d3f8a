package site

import (
	"errors"
	"fmt"
)

// Dimension is one of the three independent filter axes.
type Dimension string

// Filter dimensions, matching the data-filter attribute values.
const (
	Topic Dimension = "topic"
	Type  Dimension = "type"
	Media Dimension = "media"
)

// All matches every value of a dimension.
const All = "all"

// ErrUnknownDimension indicates a filter axis other than topic, type or media.
var ErrUnknownDimension = errors.New("unknown filter dimension")

// Item is one filterable blog entry.
type Item struct {
	ID    string
	Topic string
	Type  string
	Media string
	Date  string
}

// Criteria is an immutable filter selection. The zero value is not valid;
// use DefaultCriteria.
type Criteria struct {
	topic string
	typ   string
	media string
}

// DefaultCriteria selects everything.
func DefaultCriteria() Criteria {
	return Criteria{topic: All, typ: All, media: All}
}

// With returns a copy of c with dim set to value. An empty value means All.
func (c Criteria) With(dim Dimension, value string) (Criteria, error) {
	if value == "" {
		value = All
	}
	switch dim {
	case Topic:
		c.topic = value
	case Type:
		c.typ = value
	case Media:
		c.media = value
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}
	return c, nil
}

// Value returns the selected value of dim, or "" for an unknown dimension.
func (c Criteria) Value(dim Dimension) string {
	switch dim {
	case Topic:
		return c.topic
	case Type:
		return c.typ
	case Media:
		return c.media
	}
	return ""
}

// Matches reports whether item passes all three dimensions.
func (c Criteria) Matches(item Item) bool {
	return matches(c.topic, item.Topic) &&
		matches(c.typ, item.Type) &&
		matches(c.media, item.Media)
}

func matches(selected, value string) bool {
	return selected == All || selected == value
}

// Visible returns, for each item, whether it passes c.
func Visible(items []Item, c Criteria) []bool {
	visible := make([]bool, len(items))
	for i, item := range items {
		visible[i] = c.Matches(item)
	}
	return visible
}

// ResultCount is the status line shown above the blog index.
func ResultCount(showing, total int) string {
	if showing == total {
		return fmt.Sprintf("Showing all %d posts, sorted by latest", total)
	}
	return fmt.Sprintf("Showing %d of %d posts, sorted by latest", showing, total)
}
