package resist

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// statBoxPath is the wiki's conventional nesting from a stat box down to
// its resistance table.
const statBoxPath = "table > tbody > tr > td > table:nth-child(1) > tbody > tr > td > table:nth-child(2)"

// Parse builds a document from page markup.
func Parse(raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

// reroot renders the matched nodes and parses their concatenation into a
// fresh document, so nothing returned points into the source tree.
func reroot(sel *goquery.Selection) (*goquery.Document, error) {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("render node: %w", err)
		}
	}
	return Parse(buf.String())
}

func compile(sel string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(sel)
	if err != nil {
		return nil, &SelectorError{Selector: sel, Err: err}
	}
	return m, nil
}

// headingToken turns a label into its heading id form ("The Journey" -> "The_Journey").
func headingToken(label string) string {
	return strings.ReplaceAll(strings.TrimSpace(label), " ", "_")
}

// attrValue quotes v as a CSS string. Empty values and control characters
// are rejected rather than embedded.
func attrValue(v string) (string, error) {
	if v == "" {
		return "", &SelectorError{Selector: `""`, Err: errors.New("empty attribute value")}
	}
	if i := strings.IndexFunc(v, unicode.IsControl); i >= 0 {
		return "", &SelectorError{Selector: v, Err: fmt.Errorf("control character at %d", i)}
	}

	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(v) + `"`, nil
}

// idPrefix builds `[id^="..."]` for a heading token.
func idPrefix(token string) (string, error) {
	v, err := attrValue(token)
	if err != nil {
		return "", err
	}
	return "[id^=" + v + "]", nil
}

func idEquals(token string) (string, error) {
	v, err := attrValue(token)
	if err != nil {
		return "", err
	}
	return "[id=" + v + "]", nil
}
