package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/shadowres/internal/batch"
	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/roster"
	"github.com/brogergvhs/shadowres/internal/ui"

	"github.com/spf13/cobra"
)

var (
	allFlags sourceFlags

	// selection
	flagName  string
	flagRange string
	flagList  string

	// runtime
	flagWorkers     int
	flagAllVariants bool
	flagOnlyGame    bool
	flagDryRun      bool
)

func init() {
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Collect the resistances of every shadow of a game and its sibling edition. Uses the defaults from the selected config, overwritten by CLI flags",
		Example: `  shadowres all -g 3j > p3.json
  shadowres all -g 4g --range 1-20 --workers 4 -o yaml`,
		Args: cobra.NoArgs,
		RunE: runAll,
	}

	allFlags.register(allCmd)

	// selection
	allCmd.Flags().StringVar(&flagName, "name", "", "only the roster entry with this name or 1-based index")
	allCmd.Flags().StringVar(&flagRange, "range", "", "roster range by index (e.g. 5-12)")
	allCmd.Flags().StringVar(&flagList, "list", "", "roster indices (e.g. 1,3,5)")

	// runtime
	allCmd.Flags().IntVar(&flagWorkers, "workers", 0, "shadows looked up in parallel")
	allCmd.Flags().BoolVar(&flagAllVariants, "all-variants", false, "extract every encounter variant, not only the game's own")
	allCmd.Flags().BoolVar(&flagOnlyGame, "only-game", false, "skip the sibling edition")
	allCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "list the selected shadows without looking them up")

	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, _ []string) error {
	s, err := newSession(&allFlags, flagWorkers)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	games := bulkGames(s.game, s.cfg.Variant, flagOnlyGame)

	names, err := s.source.Roster(ctx, s.game)
	if err != nil {
		return err
	}

	selected := roster.Filter(names, flagName, flagRange, flagList)
	if len(selected) == 0 {
		return errors.New("no shadows selected")
	}
	s.log.Infof("%s: %d of %d shadows selected", s.game, len(selected), len(names))

	if flagDryRun {
		for i, n := range selected {
			fmt.Fprintf(out, "%3d) %s\n", i+1, n)
		}
		return nil
	}

	pm := ui.NewProgressManager()
	handle := pm.Register(s.game.String())
	handle.SetTotal(len(selected))

	stats := &ui.Stats{}
	runner := batch.New(s.source, s.log, s.cfg.Workers, stats)
	runner.AllVariants = flagAllVariants
	start := time.Now()

	records, runErr := runner.Run(ctx, selected, games, func(_ string, bytes int64, skipped bool) {
		handle.Step(bytes, skipped)
	})

	handle.MarkDone()
	pm.Close()

	format := s.cfg.Format
	if format == "" {
		format = "json"
	}
	if err := writeRecords(out, format, s.cfg.NoColor, records, false); err != nil {
		return err
	}

	stats.WriteSummary(os.Stderr, time.Since(start))

	return runErr
}

// bulkGames is g plus, unless onlyGame is set, its sibling edition asking
// for the same variant.
func bulkGames(g resist.Game, variant string, onlyGame bool) []resist.Game {
	games := []resist.Game{g}
	if onlyGame {
		return games
	}

	if sib, ok := g.Sibling(); ok {
		if variant != "" {
			sib = sib.WithVariant(variant)
		}
		games = append(games, sib)
	}
	return games
}
