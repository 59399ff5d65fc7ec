package resist

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// statBox renders the wiki's nested stat box: an outer table whose first
// inner table holds a stats table followed by the resistance table.
func statBox(headers, values []string) string {
	var b strings.Builder
	b.WriteString(`<table class="customtable"><tbody><tr><td>`)
	b.WriteString(`<table><tbody><tr><td>`)
	b.WriteString(`<table><tbody><tr><th>Level</th><th>HP</th></tr><tr><td>12</td><td>180</td></tr></tbody></table>`)
	b.WriteString(`<table><tbody><tr>`)
	for _, h := range headers {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString(`</tr><tr>`)
	for _, v := range values {
		b.WriteString("<td>" + v + "</td>")
	}
	b.WriteString(`</tr></tbody></table>`)
	b.WriteString(`</td></tr></tbody></table>`)
	b.WriteString(`</td></tr></tbody></table>`)
	return b.String()
}

func tab(title, body string) string {
	return `<div class="tabbertab" title="` + title + `">` + body + `</div>`
}

func tabber(tabs ...string) string {
	return `<div class="tabber">` + strings.Join(tabs, "\n") + `</div>`
}

func parse(t *testing.T, raw string) *goquery.Document {
	t.Helper()
	doc, err := Parse(raw)
	require.NoError(t, err)
	return doc
}

func outer(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	s, err := goquery.OuterHtml(doc.Selection)
	require.NoError(t, err)
	return s
}

func mustGame(t *testing.T, code string) Game {
	t.Helper()
	g, err := GameFor(code)
	require.NoError(t, err)
	return g
}

var (
	fullHeaders = []string{"Slash", "Strike", "Pierce", "Fire", "Ice", "Elec", "Wind", "Light", "Dark", "Almi"}
	fullValues  = []string{"-", "-", "-", "Null", "Weak", "-", "Repel", "-", "-", "-"}
)
