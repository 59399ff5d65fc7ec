package resist

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// portableTab marks a tab holding a further tab container of alternate
// localizations.
const portableTab = "Portable"

// sectionRule tries one known page layout. An empty selection means the
// layout does not apply and the next rule is tried.
type sectionRule struct {
	name  string
	match func(page *goquery.Document, g Game) (*goquery.Selection, error)
}

// Ordered from the most structured layout to the loosest.
var sectionRules = []sectionRule{
	{name: "tabbed-section", match: matchTabbedSection},
	{name: "heading-table", match: matchHeadingTable},
	{name: "sibling-heading-table", match: matchSiblingHeadingTable},
	{name: "page-tabber", match: matchPageTabber},
	{name: "label-heading-table", match: matchLabelHeadingTable},
}

// ResolveSection returns a fresh document holding only the part of page
// that belongs to g.
func ResolveSection(page *goquery.Document, g Game) (*goquery.Document, error) {
	sel, _, err := resolveSection(page, g)
	if err != nil {
		return nil, err
	}
	return reroot(sel)
}

func resolveSection(page *goquery.Document, g Game) (*goquery.Selection, string, error) {
	if g.Canonical == "" {
		return nil, "", fmt.Errorf("%w: empty canonical text", ErrInvalidGame)
	}

	for _, rule := range sectionRules {
		sel, err := rule.match(page, g)
		if err != nil {
			return nil, rule.name, err
		}
		if sel.Length() > 0 {
			return sel, rule.name, nil
		}
	}

	return nil, "", &NoSectionError{Title: g.Canonical, Labels: g.TabLabels}
}

func none(page *goquery.Document) *goquery.Selection {
	return page.Selection.Slice(0, 0)
}

// matchTabbedSection selects the tab container right after the series
// heading, descending into the nested container when a "Portable" tab
// is present.
func matchTabbedSection(page *goquery.Document, g Game) (*goquery.Selection, error) {
	if g.HeadingPrefix == "" {
		return none(page), nil
	}
	head, err := idPrefix(g.HeadingPrefix)
	if err != nil {
		return nil, err
	}
	m, err := compile(head + " + .tabber")
	if err != nil {
		return nil, err
	}

	tabber := page.FindMatcher(m)
	if tabber.Length() == 0 {
		return tabber, nil
	}

	tabs := tabber.ChildrenFiltered(".tabbertab")
	hasPortable := tabs.FilterFunction(func(_ int, t *goquery.Selection) bool {
		title, _ := t.Attr("title")
		return title == portableTab
	}).Length() > 0

	if hasPortable {
		if nested := tabs.ChildrenFiltered(".tabber"); nested.Length() > 0 {
			return nested, nil
		}
	}

	return tabber, nil
}

// matchHeadingTable selects a bare table right after the series heading.
func matchHeadingTable(page *goquery.Document, g Game) (*goquery.Selection, error) {
	if g.HeadingPrefix == "" {
		return none(page), nil
	}
	head, err := idPrefix(g.HeadingPrefix)
	if err != nil {
		return nil, err
	}
	m, err := compile(head + " + table")
	if err != nil {
		return nil, err
	}
	return page.FindMatcher(m), nil
}

// matchSiblingHeadingTable handles editions laid out as separate untabbed
// tables, each under its own heading following the series heading.
func matchSiblingHeadingTable(page *goquery.Document, g Game) (*goquery.Selection, error) {
	if g.HeadingPrefix == "" || len(g.TabLabels) == 0 {
		return none(page), nil
	}
	head, err := idPrefix(g.HeadingPrefix)
	if err != nil {
		return nil, err
	}
	sub, err := idEquals(headingToken(g.TabLabels[0]))
	if err != nil {
		return nil, err
	}
	m, err := compile(head + " ~ " + sub + " + table")
	if err != nil {
		return nil, err
	}
	return page.FindMatcher(m), nil
}

// matchPageTabber covers pages of shadows that only appear in one series
// and carry no per-series headings at all.
func matchPageTabber(page *goquery.Document, _ Game) (*goquery.Selection, error) {
	return page.FindMatcher(tabberSel).First(), nil
}

func matchLabelHeadingTable(page *goquery.Document, g Game) (*goquery.Selection, error) {
	if len(g.TabLabels) == 0 {
		return none(page), nil
	}
	head, err := idPrefix(headingToken(g.TabLabels[0]))
	if err != nil {
		return nil, err
	}
	m, err := compile(head + " + table")
	if err != nil {
		return nil, err
	}
	return page.FindMatcher(m), nil
}
