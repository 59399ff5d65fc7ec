package resist

import (
	"fmt"
	"strings"
)

// Category is one of the fixed resistance classifications.
type Category int

// Declaration order is the display order.
const (
	Weak Category = iota
	Strong
	Null
	Repel
	Drain
	Neutral
)

var categoryNames = [...]string{
	Weak:    "Weak",
	Strong:  "Strong",
	Null:    "Null",
	Repel:   "Repel",
	Drain:   "Drain",
	Neutral: "Neutral",
}

// classifyOrder must not be reordered: cells often carry more than the
// category word (emphasis spans, icons), so the first contained name wins.
var classifyOrder = [...]Category{Weak, Strong, Repel, Null, Drain}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{Weak, Strong, Null, Repel, Drain, Neutral}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	p, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// ParseCategory accepts a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Category(i), nil
		}
	}
	return Neutral, fmt.Errorf("unknown category %q", s)
}

// Classify maps the raw inner markup of a value cell to a category.
func Classify(cell string) Category {
	for _, c := range classifyOrder {
		if strings.Contains(cell, categoryNames[c]) {
			return c
		}
	}
	return Neutral
}
