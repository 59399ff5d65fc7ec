// Package batch looks up a list of shadows against one or more games.
package batch

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/ui"
	"github.com/brogergvhs/shadowres/internal/wiki"
)

// Tick is called once per finished name, from the worker that handled it.
type Tick func(name string, bytes int64, skipped bool)

type Runner struct {
	src     wiki.Source
	log     *ui.Logger
	workers int
	stats   *ui.Stats

	// AllVariants extracts every variant table instead of the one each
	// game asks for.
	AllVariants bool
}

// New builds a runner. workers below 1 runs names one at a time; stats
// may be nil.
func New(src wiki.Source, log *ui.Logger, workers int, stats *ui.Stats) *Runner {
	if log == nil {
		log = ui.NewNopLogger()
	}
	if workers < 1 {
		workers = 1
	}
	if stats == nil {
		stats = &ui.Stats{}
	}
	return &Runner{src: src, log: log, workers: workers, stats: stats}
}

// Run returns one record per name, in input order. Failures for a name or
// a game are logged and skipped; only cancellation stops the run, in
// which case the records gathered so far come back with ctx's error.
func (r *Runner) Run(ctx context.Context, names []string, games []resist.Game, tick Tick) ([]resist.Record, error) {
	records := make([]resist.Record, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, name := range names {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec, bytes, skipped := r.one(gctx, name, games)
			records[i] = rec

			r.stats.TotalShadows.Add(1)
			r.stats.TotalEntries.Add(int64(len(rec.Entries)))
			r.stats.TotalBytes.Add(bytes)
			if skipped {
				r.stats.TotalSkipped.Add(1)
			}
			if tick != nil {
				tick(name, bytes, skipped)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		done := records[:0]
		for _, rec := range records {
			if rec.Name != "" {
				done = append(done, rec)
			}
		}
		return done, err
	}

	return records, nil
}

func (r *Runner) one(ctx context.Context, name string, games []resist.Game) (rec resist.Record, bytes int64, skipped bool) {
	rec.Name = name

	html, _, err := wiki.Fetch(ctx, r.src, name)
	if errors.Is(err, wiki.ErrNoPage) {
		r.log.Warnf("%s: no wiki page", name)
		return rec, 0, true
	}
	if err != nil {
		r.log.Warnf("%s: %v", name, err)
		return rec, 0, true
	}
	bytes = int64(len(html))

	page, err := resist.Parse(html)
	if err != nil {
		r.log.Warnf("%s: %v", name, err)
		return rec, bytes, true
	}

	for _, game := range games {
		// Pages without an appearance list pass, so the page-wide tab
		// container rule may hand back another series' tabs for them.
		if !resist.AppearsIn(page, game) {
			r.log.Debugf("%s: not listed in %s", name, game)
			continue
		}

		entries, err := r.lookup(page, game)
		if err != nil {
			r.log.Warnf("%s (%s): %v", name, game, err)
			continue
		}
		rec.Add(entries...)
	}

	r.log.Debugf("%s: %d entries", name, len(rec.Entries))
	return rec, bytes, len(rec.Entries) == 0
}

func (r *Runner) lookup(page *goquery.Document, g resist.Game) ([]resist.Entry, error) {
	if r.AllVariants {
		return resist.Lookup(page, g)
	}

	e, err := resist.LookupVariant(page, g)
	if err != nil {
		return nil, err
	}
	return []resist.Entry{e}, nil
}
