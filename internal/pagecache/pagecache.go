// Package pagecache keeps fetched wiki pages in a local SQLite file so
// repeated lookups and bulk re-runs do not hit the wiki again.
package pagecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS titles (
	title      TEXT PRIMARY KEY,
	page_id    INTEGER NOT NULL,
	fetched_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS pages (
	page_id    INTEGER PRIMARY KEY,
	html       TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Cache is safe for concurrent use. A zero or negative TTL keeps entries
// forever.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func Open(path string, ttl time.Duration) (*Cache, error) {
	if path == "" {
		return nil, errors.New("pagecache: empty path")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("pagecache: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("pagecache: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pagecache: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("pagecache: schema: %w", err)
	}

	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) fresh(fetchedAt int64) bool {
	if c.ttl <= 0 {
		return true
	}
	return c.now().Sub(time.Unix(fetchedAt, 0)) < c.ttl
}

// PageID reports the cached id for title. ok is false on a miss or when
// the entry has expired.
func (c *Cache) PageID(ctx context.Context, title string) (id int, ok bool, err error) {
	var at int64
	err = c.db.QueryRowContext(ctx,
		`SELECT page_id, fetched_at FROM titles WHERE title = ?`, title).Scan(&id, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("pagecache: title %q: %w", title, err)
	}

	if !c.fresh(at) {
		return 0, false, nil
	}
	return id, true, nil
}

func (c *Cache) PutPageID(ctx context.Context, title string, id int) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO titles (title, page_id, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET page_id = excluded.page_id, fetched_at = excluded.fetched_at`,
		title, id, c.now().Unix())
	if err != nil {
		return fmt.Errorf("pagecache: store title %q: %w", title, err)
	}
	return nil
}

// Page reports the cached HTML for a page id.
func (c *Cache) Page(ctx context.Context, id int) (html string, ok bool, err error) {
	var at int64
	err = c.db.QueryRowContext(ctx,
		`SELECT html, fetched_at FROM pages WHERE page_id = ?`, id).Scan(&html, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pagecache: page %d: %w", id, err)
	}

	if !c.fresh(at) {
		return "", false, nil
	}
	return html, true, nil
}

func (c *Cache) PutPage(ctx context.Context, id int, html string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (page_id, html, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(page_id) DO UPDATE SET html = excluded.html, fetched_at = excluded.fetched_at`,
		id, html, c.now().Unix())
	if err != nil {
		return fmt.Errorf("pagecache: store page %d: %w", id, err)
	}
	return nil
}

// Stats counts stored titles and pages, expired ones included.
func (c *Cache) Stats(ctx context.Context) (titles, pages int, err error) {
	err = c.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM titles), (SELECT COUNT(*) FROM pages)`).Scan(&titles, &pages)
	return titles, pages, err
}

// Clear drops every entry and returns how many rows went away.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	var total int64
	for _, table := range []string{"titles", "pages"} {
		res, err := c.db.ExecContext(ctx, "DELETE FROM "+table)
		if err != nil {
			return total, fmt.Errorf("pagecache: clear %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
