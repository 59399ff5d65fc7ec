package resist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subBossPage() string {
	return `<div id="Appearances"><ul><li><i>Persona 3 / FES</i></li></ul></div>` +
		`<h2 id="Persona_3">Persona 3</h2>` +
		tabber(
			tab("Normal", statBox([]string{"Slash", "Strike"}, []string{"-", "Weak"})),
			tab("Sub-boss", statBox([]string{"Ice", "Wind", "Fire"}, []string{"Weak", "Repel", "Null"})),
		)
}

func TestLookupVariant_SubBoss(t *testing.T) {
	t.Parallel()

	page := parse(t, subBossPage())
	e, err := LookupVariant(page, mustGame(t, "3j").WithVariant("Sub-boss"))
	require.NoError(t, err)

	assert.Equal(t, "Sub-boss", e.Variant)
	assert.Equal(t, Categories{
		Weak:  {"Ice"},
		Repel: {"Wind"},
		Null:  {"Fire"},
	}, e.Categories)
}

func TestLookup_AllVariants(t *testing.T) {
	t.Parallel()

	entries, err := Lookup(parse(t, subBossPage()), mustGame(t, "3j"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Normal", entries[0].Variant)
	assert.Equal(t, []string{"Slash"}, entries[0].Categories[Neutral])
	assert.Equal(t, "Sub-boss", entries[1].Variant)
}

func TestLookup_NoTabs(t *testing.T) {
	t.Parallel()

	page := parse(t, `<h2 id="Persona_3">Persona 3</h2>`+statBox(fullHeaders, fullValues))

	for _, variant := range []string{"", "Sub-boss", "Anything at all"} {
		e, err := LookupVariant(page, mustGame(t, "3j").WithVariant(variant))
		require.NoError(t, err, variant)
		assert.Equal(t, DefaultVariant, e.Variant)
		assert.Equal(t, []string{"Ice"}, e.Categories[Weak])
		assert.Equal(t, []string{"Wind"}, e.Categories[Repel])
		assert.Equal(t, []string{"Fire"}, e.Categories[Null])
		assert.Len(t, e.Categories[Neutral], 7)
	}
}

func TestLookup_Idempotent(t *testing.T) {
	t.Parallel()

	page := parse(t, subBossPage())
	before := outer(t, page)
	g := mustGame(t, "3j").WithVariant("Sub-boss")

	s1, err := ResolveSection(page, g)
	require.NoError(t, err)
	t1, err := ResolveTable(s1, g)
	require.NoError(t, err)

	s2, err := ResolveSection(page, g)
	require.NoError(t, err)
	t2, err := ResolveTable(s2, g)
	require.NoError(t, err)

	assert.Equal(t, outer(t, s1), outer(t, s2))
	assert.Equal(t, outer(t, t1.Doc), outer(t, t2.Doc))
	assert.Equal(t, before, outer(t, page))

	e1, err := Extract(t1.Doc, g, t1.Variant)
	require.NoError(t, err)
	e2, err := Extract(t2.Doc, g, t2.Variant)
	require.NoError(t, err)
	if diff := cmp.Diff(e1, e2); diff != "" {
		t.Fatalf("entries differ (-first +second):\n%s", diff)
	}
}

func TestLookup_Errors(t *testing.T) {
	t.Parallel()

	_, err := Lookup(parse(t, `<p>stub</p>`), mustGame(t, "3j"))
	assert.True(t, errors.Is(err, ErrNotFound))

	bad := `<h2 id="Persona_3">Persona 3</h2>` +
		tabber(tab("Normal", statBox([]string{"Ice", "Wind"}, []string{"Weak"})))
	_, err = Lookup(parse(t, bad), mustGame(t, "3j"))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.ErrorContains(t, err, `variant "Normal"`)

	_, err = LookupVariant(parse(t, subBossPage()), mustGame(t, "4g"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAppearsIn(t *testing.T) {
	t.Parallel()

	page := parse(t, `<div id="Appearances"><ul>`+
		`<li><i>Persona 3 / FES</i></li><li><i>Persona 3 Portable</i></li></ul></div>`)
	assert.True(t, AppearsIn(page, mustGame(t, "3j")))
	assert.False(t, AppearsIn(page, mustGame(t, "4g")))

	typo := parse(t, `<div id="Appearences"><ul><li><i>Persona 4 Golden</i></li></ul></div>`)
	assert.True(t, AppearsIn(typo, mustGame(t, "4v")))
	assert.False(t, AppearsIn(typo, mustGame(t, "3a")))

	assert.True(t, AppearsIn(parse(t, `<p>no list</p>`), mustGame(t, "3a")))
}
