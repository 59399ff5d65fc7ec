package resist

import (
	"fmt"
	"strings"
)

// DefaultEncounter is the tab title looked for when a game carries no
// variant of its own.
const DefaultEncounter = "Normal Encounter"

// Game describes the title being searched for on a shadow page.
type Game struct {
	Code      string
	Canonical string
	// TabLabels lists the acceptable tab titles, most preferred first.
	TabLabels []string
	Variant   string

	// HeadingPrefix is the id prefix shared by every heading of the series.
	HeadingPrefix string
	// RosterPage is the page listing every shadow of the series.
	RosterPage int
}

const (
	p3Prefix = "Persona_3"
	p4Prefix = "Persona_4"

	p3Roster = 2807
	p4Roster = 12686
)

// GameFor maps a CLI game code to its descriptor. Each call builds a
// fresh value, callers never share label slices.
func GameFor(code string) (Game, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "3", "3j":
		return Game{
			Code:          "3j",
			Canonical:     "Persona 3",
			TabLabels:     []string{"The Journey", "Persona 3"},
			Variant:       "Normal",
			HeadingPrefix: p3Prefix,
			RosterPage:    p3Roster,
		}, nil
	case "3a":
		return Game{
			Code:          "3a",
			Canonical:     "Persona 3",
			TabLabels:     []string{"The Answer"},
			HeadingPrefix: p3Prefix,
			RosterPage:    p3Roster,
		}, nil
	case "4", "4g":
		return Game{
			Code:          "4g",
			Canonical:     "Persona 4",
			TabLabels:     []string{"Golden"},
			HeadingPrefix: p4Prefix,
			RosterPage:    p4Roster,
		}, nil
	case "4v":
		return Game{
			Code:          "4v",
			Canonical:     "Persona 4",
			TabLabels:     []string{"Persona 4"},
			HeadingPrefix: p4Prefix,
			RosterPage:    p4Roster,
		}, nil
	}

	return Game{}, fmt.Errorf("%w: %q (one of: %s)", ErrUnknownGame, code, strings.Join(GameCodes(), ", "))
}

// GameCodes lists the accepted game codes.
func GameCodes() []string {
	return []string{"3", "3j", "3a", "4", "4g", "4v"}
}

// Sibling returns the other edition of the same series.
func (g Game) Sibling() (Game, bool) {
	var code string
	switch g.Code {
	case "3j":
		code = "3a"
	case "3a":
		code = "3j"
	case "4g":
		code = "4v"
	case "4v":
		code = "4g"
	default:
		return Game{}, false
	}

	s, err := GameFor(code)
	return s, err == nil
}

// WithVariant returns a copy of g looking for the given variant.
func (g Game) WithVariant(v string) Game {
	g.TabLabels = append([]string(nil), g.TabLabels...)
	g.Variant = strings.TrimSpace(v)
	return g
}

// VariantOrDefault is the tab title the single-variant resolver searches for.
func (g Game) VariantOrDefault() string {
	if g.Variant != "" {
		return g.Variant
	}
	return DefaultEncounter
}

// Edition is the first preferred tab label, used to tell editions of one
// series apart in results.
func (g Game) Edition() string {
	if len(g.TabLabels) == 0 {
		return ""
	}
	return g.TabLabels[0]
}

func (g Game) String() string {
	if e := g.Edition(); e != "" && e != g.Canonical {
		return g.Canonical + " (" + e + ")"
	}
	return g.Canonical
}
