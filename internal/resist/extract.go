package resist

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/microcosm-cc/bluemonday"
)

var (
	headerCellsSel = cascadia.MustCompile("tbody > tr:nth-child(1) > th")
	valueCellsSel  = cascadia.MustCompile("tbody > tr:nth-child(2) > td")
	// icon-only headers carry their label in an attribute
	labelAttrSel = cascadia.MustCompile("[alt], [title]")

	// strips every tag from header cells, leaving escaped text
	labelPolicy = bluemonday.StrictPolicy()
)

// Extract turns a resistance table into an entry. Header cells of the
// first row give the labels, the second row gives each label's category.
func Extract(table *goquery.Document, g Game, variant string) (Entry, error) {
	var labels []string
	table.FindMatcher(headerCellsSel).Each(func(_ int, th *goquery.Selection) {
		labels = append(labels, cellLabel(th))
	})

	var values []Category
	table.FindMatcher(valueCellsSel).Each(func(_ int, td *goquery.Selection) {
		raw, _ := td.Html()
		values = append(values, Classify(raw))
	})

	if len(labels) == 0 || len(labels) != len(values) {
		return Entry{}, &ShapeError{Headers: len(labels), Values: len(values)}
	}

	for i, l := range labels {
		if l == "" {
			return Entry{}, &ShapeError{Headers: len(labels), Values: len(values), BlankColumn: i + 1}
		}
	}

	cats := make(Categories)
	for i, c := range values {
		cats[c] = append(cats[c], labels[i])
	}

	return Entry{
		Game:       g.Canonical,
		Edition:    g.Edition(),
		Variant:    variant,
		Categories: cats,
	}, nil
}

// cellLabel is the cell's text with markup stripped, or failing that the
// first non-blank alt or title attribute inside it.
func cellLabel(cell *goquery.Selection) string {
	raw, _ := cell.Html()
	if text := squash(html.UnescapeString(labelPolicy.Sanitize(raw))); text != "" {
		return text
	}

	var label string
	cell.FindMatcher(labelAttrSel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		for _, attr := range []string{"alt", "title"} {
			if v, ok := el.Attr(attr); ok {
				if label = squash(v); label != "" {
					return false
				}
			}
		}
		return true
	})
	return label
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
