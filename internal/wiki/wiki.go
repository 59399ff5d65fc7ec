// Package wiki defines where shadow pages come from.
package wiki

import (
	"context"
	"errors"
)

// NoPage is the id a Source reports for a title the wiki does not have.
const NoPage = -1

var ErrNoPage = errors.New("page does not exist")

// Source resolves page titles to ids and ids to rendered article HTML.
type Source interface {
	// PageID returns NoPage, with a nil error, when the title is unknown.
	PageID(ctx context.Context, title string) (int, error)
	PageHTML(ctx context.Context, id int) (string, error)
}

// Fetch resolves title and returns its HTML and page id. A title the
// source does not know yields ErrNoPage.
func Fetch(ctx context.Context, src Source, title string) (string, int, error) {
	id, err := src.PageID(ctx, title)
	if err != nil {
		return "", NoPage, err
	}
	if id == NoPage {
		return "", NoPage, ErrNoPage
	}

	html, err := src.PageHTML(ctx, id)
	if err != nil {
		return "", id, err
	}
	return html, id, nil
}
