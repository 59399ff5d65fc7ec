package fandom

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/roster"
)

var rosterCellSel = cascadia.MustCompile(".table > tbody > tr td:nth-child(1)")

// Roster lists every shadow of g's series in page order.
func (c *Client) Roster(ctx context.Context, g resist.Game) ([]string, error) {
	if g.RosterPage == 0 {
		return nil, fmt.Errorf("%s has no roster page", g)
	}

	html, err := c.PageHTML(ctx, g.RosterPage)
	if err != nil {
		return nil, fmt.Errorf("roster for %s: %w", g, err)
	}

	doc, err := resist.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("roster for %s: %w", g, err)
	}

	names := RosterNames(doc)
	c.log.Debugf("roster for %s: %d shadows", g, len(names))
	return names, nil
}

// RosterNames reads the first cell of every table row. Blank cells are
// dropped and repeats keep their first position.
func RosterNames(doc *goquery.Document) []string {
	var names []string
	doc.FindMatcher(rosterCellSel).Each(func(_ int, cell *goquery.Selection) {
		if n := strings.Join(strings.Fields(cell.Text()), " "); n != "" {
			names = append(names, n)
		}
	})

	return roster.Dedupe(names)
}
