package wiki

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]string

func (m mapSource) PageID(_ context.Context, title string) (int, error) {
	if title == "broken" {
		return 0, errors.New("boom")
	}
	if _, ok := m[title]; !ok {
		return NoPage, nil
	}
	return len(title), nil
}

func (m mapSource) PageHTML(_ context.Context, id int) (string, error) {
	for k, v := range m {
		if len(k) == id {
			return v, nil
		}
	}
	return "", ErrNoPage
}

func TestFetch(t *testing.T) {
	src := mapSource{"Maya": "<p>maya</p>"}

	html, id, err := Fetch(context.Background(), src, "Maya")
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, "<p>maya</p>", html)

	_, id, err = Fetch(context.Background(), src, "Nobody")
	assert.ErrorIs(t, err, ErrNoPage)
	assert.Equal(t, NoPage, id)

	_, _, err = Fetch(context.Background(), src, "broken")
	assert.EqualError(t, err, "boom")
}
