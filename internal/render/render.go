// Package render decides which fields of a decoded line are shown and
// in what order. It is pure policy: prioritized fields first, then the
// line's remaining fields, with suppression and horizontal offset
// applied for the one-line view. Styling is the UI's business.
package render

import (
	"jlview/internal/store"
)

// Pair is one displayable key/value cell.
type Pair struct {
	Key   string
	Value string
}

// Entry renders the "key : value" row text used on the field-list
// screen; find mode matches against exactly this text.
func (p Pair) Entry() string {
	return p.Key + " : " + p.Value
}

// LineFields selects the fields shown for one line on the main
// screen. Fields named in order come first (in that order, absent
// keys skipped), then the line's remaining fields in original order,
// minus suppressed ones. The first offset fields of that combined
// sequence are dropped from the result but still counted; the total
// feeds the horizontal-scroll high-water mark.
func LineFields(fields []store.Field, order, suppressed []string, offset int) (visible []Pair, total int) {
	emit := func(f store.Field) {
		if offset <= total {
			visible = append(visible, Pair{Key: f.Name, Value: f.Display()})
		}
		total++
	}

	for _, key := range order {
		if f, ok := lookup(fields, key); ok {
			emit(f)
		}
	}
	for _, f := range fields {
		if contains(order, f.Name) || contains(suppressed, f.Name) {
			continue
		}
		emit(f)
	}
	return visible, total
}

// DetailEntries lists every field of a line for the field-list
// screen: prioritized keys present in the line first, then all
// remaining keys in original order. Suppression does not hide fields
// here; the detail screen always shows the whole object.
func DetailEntries(fields []store.Field, order []string) []Pair {
	entries := make([]Pair, 0, len(fields))
	for _, key := range order {
		if f, ok := lookup(fields, key); ok {
			entries = append(entries, Pair{Key: f.Name, Value: f.Display()})
		}
	}
	for _, f := range fields {
		if contains(order, f.Name) {
			continue
		}
		entries = append(entries, Pair{Key: f.Name, Value: f.Display()})
	}
	return entries
}

func lookup(fields []store.Field, key string) (store.Field, bool) {
	for _, f := range fields {
		if f.Name == key {
			return f, true
		}
	}
	return store.Field{}, false
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
