package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var all = []string{"Maya", "Ose", "Ose Adv.", "Jack Frost", "Pixie"}

func TestKey(t *testing.T) {
	assert.Equal(t, "jack_frost", Key("Jack Frost"))
	assert.Equal(t, "ose", Key("O.S.E."))
	assert.Equal(t, "ose_adv", Key("Ose Adv."))
	assert.Equal(t, "king_frost", Key("King  -  Frost"))
	assert.Equal(t, "", Key("()"))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name           string
		sel, rng, list string
		want           []string
	}{
		{"none", "", "", "", all},
		{"by name", "jack frost", "", "", []string{"Jack Frost"}},
		{"by position", "2", "", "", []string{"Ose"}},
		{"unknown name", "Alice", "", "", nil},
		{"name wins", "Pixie", "1-2", "", []string{"Pixie"}},
		{"range", "", "2-3", "", []string{"Ose", "Ose Adv."}},
		{"range out of bounds", "", "4-9", "", nil},
		{"range reversed", "", "3-1", "", nil},
		{"range malformed", "", "a-b", "", nil},
		{"list", "", "", "5, 1,x,,9", []string{"Pixie", "Maya"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(all, tt.sel, tt.rng, tt.list))
		})
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"Maya", "maya", "", "Ose", "Maya "})
	assert.Equal(t, []string{"Maya", "Ose"}, got)
}
