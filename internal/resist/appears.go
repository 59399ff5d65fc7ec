package resist

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// The heading id is matched by prefix since the wiki spells it
// inconsistently.
var appearancesSel = cascadia.MustCompile("[id^=Appe] > ul > li > i")

// AppearsIn reports whether the page's appearance list names g. Pages
// without an appearance list are not rejected.
func AppearsIn(page *goquery.Document, g Game) bool {
	items := page.FindMatcher(appearancesSel)
	if items.Length() == 0 {
		return true
	}

	var all strings.Builder
	items.Each(func(_ int, i *goquery.Selection) {
		all.WriteString(dropSpace(i.Text()))
	})

	listed := strings.ReplaceAll(all.String(), "/", "")
	return strings.Contains(listed, dropSpace(g.Canonical))
}

func dropSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
