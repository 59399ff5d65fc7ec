package resist

import "slices"

// Categories groups damage labels by resistance category. Labels keep the
// left-to-right column order of the source table.
type Categories map[Category][]string

// Entry is the resistance data of one shadow for one game and variant.
type Entry struct {
	Game       string     `json:"game" yaml:"game"`
	Edition    string     `json:"edition,omitempty" yaml:"edition,omitempty"`
	Variant    string     `json:"variant" yaml:"variant"`
	Categories Categories `json:"resistances" yaml:"resistances"`
}

// Group is one non-empty category of an entry.
type Group struct {
	Category Category
	Labels   []string
}

// Ordered returns the non-empty categories in display order.
func (e Entry) Ordered() []Group {
	out := make([]Group, 0, len(e.Categories))
	for _, c := range AllCategories() {
		if labels := e.Categories[c]; len(labels) > 0 {
			out = append(out, Group{Category: c, Labels: labels})
		}
	}
	return out
}

// Len is the number of labels across all categories.
func (e Entry) Len() int {
	n := 0
	for _, labels := range e.Categories {
		n += len(labels)
	}
	return n
}

// Equal reports whether both entries carry the same data.
func (e Entry) Equal(o Entry) bool {
	if e.Game != o.Game || e.Edition != o.Edition || e.Variant != o.Variant || len(e.Categories) != len(o.Categories) {
		return false
	}
	for c, labels := range e.Categories {
		if !slices.Equal(labels, o.Categories[c]) {
			return false
		}
	}
	return true
}

// Record aggregates every entry found for one shadow.
type Record struct {
	Name    string  `json:"name" yaml:"name"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Add appends entries not already present in the record.
func (r *Record) Add(entries ...Entry) int {
	added := 0
	for _, e := range entries {
		if slices.ContainsFunc(r.Entries, e.Equal) {
			continue
		}
		r.Entries = append(r.Entries, e)
		added++
	}
	return added
}
