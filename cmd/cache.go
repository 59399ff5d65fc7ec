package cmd

import (
	"errors"
	"fmt"

	"github.com/brogergvhs/shadowres/internal/config"
	"github.com/brogergvhs/shadowres/internal/pagecache"

	"github.com/spf13/cobra"
)

var flagCacheFile string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show the page cache of the active config",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, path, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		titles, pages, err := c.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cache: %s\nTitles: %d\nPages:  %d\n", path, titles, pages)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached page",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, path, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		n, err := c.Clear(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries from %s\n", n, path)
		return nil
	},
}

func openCache() (*pagecache.Cache, string, error) {
	path := flagCacheFile
	if path == "" {
		cfg, _, err := config.LoadMerged(config.Options{IgnoreConfig: flagIgnoreConfig})
		if err != nil {
			return nil, "", err
		}
		path = cfg.CachePath
	}
	if path == "" {
		return nil, "", errors.New("no cache_path configured, pass --cache or set cache_path in the config")
	}

	c, err := pagecache.Open(path, 0)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&flagCacheFile, "cache", "", "page cache file (SQLite)")
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
