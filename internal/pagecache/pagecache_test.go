package pagecache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "sub", "pages.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t, 0)

	_, ok, err := c.PageID(ctx, "Maya")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.PutPageID(ctx, "Maya", 42))
	require.NoError(t, c.PutPageID(ctx, "Maya", 43))
	id, ok, err := c.PageID(ctx, "Maya")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 43, id)

	require.NoError(t, c.PutPageID(ctx, "Nobody", -1))
	id, ok, _ = c.PageID(ctx, "Nobody")
	assert.True(t, ok)
	assert.Equal(t, -1, id)

	require.NoError(t, c.PutPage(ctx, 43, "<p>maya</p>"))
	html, ok, err := c.Page(ctx, 43)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<p>maya</p>", html)

	titles, pages, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, titles)
	assert.Equal(t, 1, pages)

	n, err := c.Clear(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	_, ok, _ = c.Page(ctx, 43)
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t, time.Hour)

	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }

	require.NoError(t, c.PutPage(ctx, 1, "x"))
	require.NoError(t, c.PutPageID(ctx, "X", 1))

	now = now.Add(59 * time.Minute)
	_, ok, _ := c.Page(ctx, 1)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = c.Page(ctx, 1)
	assert.False(t, ok)
	_, ok, _ = c.PageID(ctx, "X")
	assert.False(t, ok)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("", 0)
	assert.Error(t, err)
}
