package resist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// DefaultVariant labels the only table of a section without tabs.
const DefaultVariant = "Default"

var (
	tabberSel = cascadia.MustCompile(".tabber")
	// Some variant tabs hold a second, unrelated tab set (summon-triggered
	// forms); when present, the inner set is the variant list.
	nestedTabsSel = cascadia.MustCompile(".tabbertab > .tabber > .tabbertab")
	flatTabsSel   = cascadia.MustCompile(".tabbertab")
	statBoxSel    = cascadia.MustCompile(statBoxPath)
)

// Table is a re-rooted resistance table and the variant it belongs to.
type Table struct {
	Doc     *goquery.Document
	Variant string
}

func findTabs(section *goquery.Document) *goquery.Selection {
	if tabs := section.FindMatcher(nestedTabsSel); tabs.Length() > 0 {
		return tabs
	}
	return section.FindMatcher(flatTabsSel)
}

// tableSelector addresses the stat box table of the tab at sibling
// position pos.
func tableSelector(pos int) string {
	return fmt.Sprintf("div:nth-child(%d) > %s", pos+1, statBoxPath)
}

// tabTable re-roots the resistance table of one tab. A nil document
// means the tab carries no stat box.
func tabTable(tab *goquery.Selection) (*goquery.Document, error) {
	m, err := compile(tableSelector(tab.Index()))
	if err != nil {
		return nil, err
	}

	table := tab.FindMatcher(m).First()
	if table.Length() == 0 {
		return nil, nil
	}
	return reroot(table)
}

func defaultTable(section *goquery.Document) (Table, error) {
	table := section.FindMatcher(statBoxSel).First()
	if table.Length() == 0 {
		return Table{}, &NoTableError{}
	}

	doc, err := reroot(table)
	if err != nil {
		return Table{}, err
	}
	return Table{Doc: doc, Variant: DefaultVariant}, nil
}

// ResolveTables returns one table per variant tab of section, in document
// order. A section without tabs yields its stat box as DefaultVariant.
// Tabs without a stat box are left out.
func ResolveTables(section *goquery.Document) ([]Table, error) {
	tabs := findTabs(section)
	if tabs.Length() == 0 {
		t, err := defaultTable(section)
		if err != nil {
			return nil, err
		}
		return []Table{t}, nil
	}

	out := make([]Table, 0, tabs.Length())
	for i := range tabs.Nodes {
		tab := tabs.Eq(i)
		doc, err := tabTable(tab)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}

		title, _ := tab.Attr("title")
		out = append(out, Table{Doc: doc, Variant: strings.TrimSpace(title)})
	}

	if len(out) == 0 {
		return nil, &NoTableError{}
	}
	return out, nil
}

// ResolveTable returns the single table of g's variant. A tab whose title
// contains the variant wins, then a tab titled after one of g's labels.
// When tabs exist and none match, that absence is reported rather than
// falling back to the stat box.
func ResolveTable(section *goquery.Document, g Game) (Table, error) {
	tabs := findTabs(section)
	want := g.VariantOrDefault()

	idx := -1
	tabs.EachWithBreak(func(i int, t *goquery.Selection) bool {
		if title, _ := t.Attr("title"); strings.Contains(title, want) {
			idx = i
			return false
		}
		return true
	})
	if idx < 0 {
		tabs.EachWithBreak(func(i int, t *goquery.Selection) bool {
			if title, _ := t.Attr("title"); slices.Contains(g.TabLabels, title) {
				idx = i
				return false
			}
			return true
		})
	}

	if idx >= 0 {
		tab := tabs.Eq(idx)
		title, _ := tab.Attr("title")
		doc, err := tabTable(tab)
		if err != nil {
			return Table{}, err
		}
		if doc == nil {
			return Table{}, &NoTableError{Variant: title}
		}
		return Table{Doc: doc, Variant: strings.TrimSpace(title)}, nil
	}

	if tabs.Length() > 0 {
		return Table{}, &NoVariantError{Title: g.Canonical, Variant: want, Labels: g.TabLabels}
	}

	return defaultTable(section)
}
