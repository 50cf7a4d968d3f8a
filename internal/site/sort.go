package site

import (
	"slices"
	"strings"
	"time"
)

// dateLayouts are the data-date formats accepted, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate parses a data-date value.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByLatest returns items ordered by date, newest first. Items with the
// same date keep their order; items with unparsable dates go last.
func SortByLatest(items []Item) []Item {
	order := latestOrder(items)

	out := make([]Item, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}

// latestOrder returns the indexes of items in newest-first order.
func latestOrder(items []Item) []int {
	type keyed struct {
		idx  int
		date time.Time
		ok   bool
	}

	keys := make([]keyed, len(items))
	for i, item := range items {
		t, ok := ParseDate(item.Date)
		keys[i] = keyed{idx: i, date: t, ok: ok}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.date.Compare(a.date)
	})

	order := make([]int, len(keys))
	for i, k := range keys {
		order[i] = k.idx
	}
	return order
}
