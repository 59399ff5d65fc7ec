package fandom

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "vs": true,
}

// NormalizeName title-cases a user typed shadow name the way wiki titles
// are written: "intrepid knight" becomes "Intrepid Knight", "lust of
// the flesh" keeps its small words lower case. Words that already carry
// inner capitals are left alone.
func NormalizeName(name string) string {
	title := cases.Title(language.English)
	words := strings.Fields(name)

	for i, w := range words {
		switch {
		case hasInnerUpper(w):
		case i > 0 && i < len(words)-1 && smallWords[strings.ToLower(w)]:
			words[i] = strings.ToLower(w)
		default:
			words[i] = title.String(w)
		}
	}

	return strings.Join(words, " ")
}

func hasInnerUpper(w string) bool {
	for i, r := range w {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
