package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/wiki"
	"github.com/brogergvhs/shadowres/internal/wiki/fandom"

	"github.com/spf13/cobra"
)

var lookupFlags sourceFlags

func init() {
	lookupCmd := &cobra.Command{
		Use:   "lookup <shadow name>",
		Short: "Show the resistances of one shadow. Uses the defaults from the selected config, overwritten by CLI flags",
		Example: `  shadowres lookup intrepid knight -g 3j
  shadowres lookup "Bigoted Maya" -g 3a --variant Sub-boss -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLookup,
	}

	lookupFlags.register(lookupCmd)
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	s, err := newSession(&lookupFlags, 0)
	if err != nil {
		return err
	}
	defer s.Close()

	name := fandom.NormalizeName(strings.Join(args, " "))
	rec, err := lookupShadow(cmd.Context(), s.source, s.game, name, s.cfg.Variant != "")
	if err != nil {
		return err
	}

	return writeRecords(cmd.OutOrStdout(), s.cfg.Format, s.cfg.NoColor, []resist.Record{rec}, true)
}

// lookupShadow extracts every variant of name for g, or only g's own
// variant when single is set.
func lookupShadow(ctx context.Context, src wiki.Source, g resist.Game, name string, single bool) (resist.Record, error) {
	rec := resist.Record{Name: name}
	notFound := &resist.NoShadowError{Name: name, Game: g.Canonical}

	html, _, err := wiki.Fetch(ctx, src, name)
	if errors.Is(err, wiki.ErrNoPage) {
		return rec, notFound
	}
	if err != nil {
		return rec, err
	}

	page, err := resist.Parse(html)
	if err != nil {
		return rec, err
	}
	if !resist.AppearsIn(page, g) {
		return rec, notFound
	}

	if single {
		e, err := resist.LookupVariant(page, g)
		if err != nil {
			return rec, err
		}
		rec.Add(e)
		return rec, nil
	}

	entries, err := resist.Lookup(page, g)
	if err != nil {
		return rec, err
	}
	rec.Add(entries...)
	return rec, nil
}
