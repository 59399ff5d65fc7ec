package resist

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Lookup resolves g's section of page and extracts every variant in it.
func Lookup(page *goquery.Document, g Game) ([]Entry, error) {
	section, err := ResolveSection(page, g)
	if err != nil {
		return nil, err
	}

	tables, err := ResolveTables(section)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(tables))
	for _, t := range tables {
		e, err := Extract(t.Doc, g, t.Variant)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", t.Variant, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// LookupVariant resolves g's section of page and extracts only the
// variant g asks for.
func LookupVariant(page *goquery.Document, g Game) (Entry, error) {
	section, err := ResolveSection(page, g)
	if err != nil {
		return Entry{}, err
	}

	t, err := ResolveTable(section, g)
	if err != nil {
		return Entry{}, err
	}

	return Extract(t.Doc, g, t.Variant)
}
