// Package fandom reads shadow pages from a Fandom hosted MediaWiki.
package fandom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/brogergvhs/shadowres/internal/pagecache"
	"github.com/brogergvhs/shadowres/internal/ui"
	"github.com/brogergvhs/shadowres/internal/util"
	"github.com/brogergvhs/shadowres/internal/wiki"
)

const (
	attempts = 3
	backoff  = 500 * time.Millisecond
)

type Client struct {
	client *http.Client
	base   string
	log    *ui.Logger
	cache  *pagecache.Cache
}

var _ wiki.Source = (*Client)(nil)

// NewClient talks to the wiki at baseURL. log and cache may be nil.
func NewClient(c *http.Client, baseURL string, log *ui.Logger, cache *pagecache.Cache) *Client {
	if log == nil {
		log = ui.NewNopLogger()
	}
	return &Client{
		client: c,
		base:   strings.TrimRight(baseURL, "/"),
		log:    log,
		cache:  cache,
	}
}

type queryResponse struct {
	Query struct {
		PageIDs []string `json:"pageids"`
	} `json:"query"`
}

type articleResponse struct {
	Content string `json:"content"`
}

func (c *Client) pageIDURL(title string) string {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("action", "query")
	q.Set("redirect", "1")
	q.Set("titles", title)
	return c.base + "/api.php?" + q.Encode() + "&indexpageids"
}

func (c *Client) articleURL(id int) string {
	return c.base + "/api/v1/Articles/AsJson?id=" + strconv.Itoa(id)
}

// PageID looks title up as given; callers normalize names first.
func (c *Client) PageID(ctx context.Context, title string) (int, error) {
	if c.cache != nil {
		if id, ok, err := c.cache.PageID(ctx, title); err != nil {
			c.log.Warnf("cache: %v", err)
		} else if ok {
			c.log.Debugf("cache hit: title %q -> %d", title, id)
			return id, nil
		}
	}

	var body queryResponse
	if err := c.getJSON(ctx, c.pageIDURL(title), &body); err != nil {
		return wiki.NoPage, fmt.Errorf("page id for %q: %w", title, err)
	}

	if len(body.Query.PageIDs) == 0 {
		return wiki.NoPage, fmt.Errorf("page id for %q: empty pageids", title)
	}

	id, err := strconv.Atoi(body.Query.PageIDs[0])
	if err != nil {
		return wiki.NoPage, fmt.Errorf("page id for %q: %w", title, err)
	}
	if id < 0 {
		id = wiki.NoPage
	}

	if c.cache != nil {
		if err := c.cache.PutPageID(ctx, title, id); err != nil {
			c.log.Warnf("cache: %v", err)
		}
	}

	return id, nil
}

func (c *Client) PageHTML(ctx context.Context, id int) (string, error) {
	if id == wiki.NoPage {
		return "", wiki.ErrNoPage
	}

	if c.cache != nil {
		if html, ok, err := c.cache.Page(ctx, id); err != nil {
			c.log.Warnf("cache: %v", err)
		} else if ok {
			c.log.Debugf("cache hit: page %d", id)
			return html, nil
		}
	}

	var body articleResponse
	if err := c.getJSON(ctx, c.articleURL(id), &body); err != nil {
		return "", fmt.Errorf("page %d: %w", id, err)
	}

	if c.cache != nil {
		if err := c.cache.PutPage(ctx, id, body.Content); err != nil {
			c.log.Warnf("cache: %v", err)
		}
	}

	return body.Content, nil
}

func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := util.DoWithRetry(c.client, req, attempts, backoff)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return wiki.ErrNoPage
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s: HTTP %d", target, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}

	return nil
}
