package resist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSection_Rules(t *testing.T) {
	t.Parallel()

	box := statBox(fullHeaders, fullValues)

	tests := []struct {
		name     string
		code     string
		page     string
		wantRule string
		// a fragment the section must contain, and one it must not
		contains string
		excludes string
	}{
		{
			name: "tabber after series heading",
			code: "3j",
			page: `<h2 id="Persona_3">Persona 3</h2>` +
				tabber(tab("Normal Encounter", box), tab("Sub-boss", box)) +
				`<h2 id="Persona_4">Persona 4</h2>` + tabber(tab("Golden", box)),
			wantRule: "tabbed-section",
			contains: `title="Sub-boss"`,
			excludes: `title="Golden"`,
		},
		{
			name: "portable tab descends into nested tabber",
			code: "3j",
			page: `<h2 id="Persona_3">Persona 3</h2>` +
				tabber(
					tab("PS2", box),
					tab("Portable", tabber(tab("Male Protagonist", box), tab("Female Protagonist", box))),
				),
			wantRule: "tabbed-section",
			contains: `title="Female Protagonist"`,
			excludes: `title="PS2"`,
		},
		{
			name:     "bare table after series heading",
			code:     "3j",
			page:     `<h2 id="Persona_3">Persona 3</h2>` + box + `<h2 id="Persona_4">Persona 4</h2><p>none</p>`,
			wantRule: "heading-table",
			contains: "customtable",
		},
		{
			name: "edition headings under series heading",
			code: "3a",
			page: `<h2 id="Persona_3">Persona 3</h2><p>Appears twice.</p>` +
				`<h3 id="The_Journey">The Journey</h3>` + statBox([]string{"Fire"}, []string{"Weak"}) +
				`<h3 id="The_Answer">The Answer</h3>` + statBox([]string{"Ice"}, []string{"Drain"}),
			wantRule: "sibling-heading-table",
			contains: "Ice",
			excludes: "Fire",
		},
		{
			name:     "single tabber without series headings",
			code:     "4g",
			page:     `<p>Only in one game.</p>` + tabber(tab("Golden", box)) + tabber(tab("Other", box)),
			wantRule: "page-tabber",
			contains: `title="Golden"`,
			excludes: `title="Other"`,
		},
		{
			name:     "table after heading named by tab label",
			code:     "3j",
			page:     `<h3 id="The_Journey_(Boss)">The Journey</h3>` + box,
			wantRule: "label-heading-table",
			contains: "customtable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := parse(t, tt.page)
			sel, rule, err := resolveSection(page, mustGame(t, tt.code))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRule, rule)

			section, err := reroot(sel)
			require.NoError(t, err)
			got := outer(t, section)
			assert.Contains(t, got, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, got, tt.excludes)
			}
		})
	}
}

func TestResolveSection_PrefersTabbedOverTable(t *testing.T) {
	t.Parallel()

	page := parse(t, `<h2 id="Persona_3">Persona 3</h2>`+
		tabber(tab("Normal Encounter", statBox([]string{"Fire"}, []string{"Weak"})))+
		`<h3 id="Persona_3_Reload">Reload</h3>`+
		statBox([]string{"Ice"}, []string{"Weak"}))

	_, rule, err := resolveSection(page, mustGame(t, "3j"))
	require.NoError(t, err)
	assert.Equal(t, "tabbed-section", rule)

	section, err := ResolveSection(page, mustGame(t, "3j"))
	require.NoError(t, err)
	assert.Equal(t, 1, section.Find(".tabber").Length())
	assert.NotContains(t, outer(t, section), "Ice")
}

func TestResolveSection_NotFound(t *testing.T) {
	t.Parallel()

	page := parse(t, `<h2 id="Persona_4">Persona 4</h2><p>No stat box.</p>`)
	_, err := ResolveSection(page, mustGame(t, "3j"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nse *NoSectionError
	require.True(t, errors.As(err, &nse))
	assert.Equal(t, "Persona 3", nse.Title)
	assert.Equal(t, []string{"The Journey", "Persona 3"}, nse.Labels)
}

func TestResolveSection_BadLabel(t *testing.T) {
	t.Parallel()

	page := parse(t, `<p>nothing here</p>`)
	g := Game{Canonical: "Persona 3", TabLabels: []string{"The\x01Journey"}}

	_, err := ResolveSection(page, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelector))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestResolveSection_QuotedLabel(t *testing.T) {
	t.Parallel()

	page := parse(t, `<h3 id="Shadow_&quot;X&quot;">X</h3>`+statBox([]string{"Fire"}, []string{"Weak"}))
	g := Game{Canonical: "Persona 3", TabLabels: []string{`Shadow "X"`}}

	section, err := ResolveSection(page, g)
	require.NoError(t, err)
	assert.Contains(t, outer(t, section), "Fire")
}

func TestResolveSection_InvalidGame(t *testing.T) {
	t.Parallel()

	_, err := ResolveSection(parse(t, "<p></p>"), Game{})
	assert.True(t, errors.Is(err, ErrInvalidGame))
}
