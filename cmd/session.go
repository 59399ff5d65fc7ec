package cmd

import (
	"fmt"
	"strings"
	"sync"

	"github.com/brogergvhs/shadowres/internal/config"
	"github.com/brogergvhs/shadowres/internal/pagecache"
	"github.com/brogergvhs/shadowres/internal/resist"
	"github.com/brogergvhs/shadowres/internal/ui"
	"github.com/brogergvhs/shadowres/internal/util"
	"github.com/brogergvhs/shadowres/internal/wiki/fandom"

	"github.com/spf13/cobra"
)

// sourceFlags are the flags shared by every command that reads the wiki.
type sourceFlags struct {
	game      string
	variant   string
	format    string
	baseURL   string
	userAgent string
	cachePath string
	timeout   int
	cacheTTL  int

	cloudflare bool
	noCache    bool
}

func (f *sourceFlags) register(c *cobra.Command) {
	fl := c.Flags()
	fl.StringVarP(&f.game, "game", "g", "", "game code, one of: "+strings.Join(resist.GameCodes(), ", "))
	fl.StringVar(&f.variant, "variant", "", `encounter variant tab, e.g. "Sub-boss"`)
	fl.StringVarP(&f.format, "format", "o", "", "output format: text, json or yaml")
	fl.StringVar(&f.baseURL, "base-url", "", "wiki base URL")
	fl.StringVar(&f.userAgent, "user-agent", "", "override User-Agent")
	fl.StringVar(&f.cachePath, "cache", "", "page cache file (SQLite)")
	fl.IntVar(&f.timeout, "timeout", 0, "HTTP timeout in seconds")
	fl.IntVar(&f.cacheTTL, "cache-ttl", 0, "page cache lifetime in hours")
	fl.BoolVar(&f.cloudflare, "cloudflare-bypass", false, "send requests through the Cloudflare bypass transport")
	fl.BoolVar(&f.noCache, "no-cache", false, "do not read or write the page cache")
}

func (f *sourceFlags) options() config.Options {
	return config.Options{
		IgnoreConfig:     flagIgnoreConfig,
		Debug:            flagDebug,
		NoColor:          flagNoColor,
		Game:             f.game,
		Variant:          f.variant,
		Format:           f.format,
		BaseURL:          f.baseURL,
		UserAgent:        f.userAgent,
		TimeoutSeconds:   f.timeout,
		CloudflareBypass: f.cloudflare,
		CachePath:        f.cachePath,
		CacheTTLHours:    f.cacheTTL,
	}
}

// session holds what a wiki reading command needs for one run.
type session struct {
	cfg    *config.Config
	log    *ui.Logger
	game   resist.Game
	source *fandom.Client
	cache  *pagecache.Cache

	stop      func()
	closeOnce sync.Once
}

func newSession(f *sourceFlags, workers int) (*session, error) {
	opts := f.options()
	opts.Workers = workers

	cfg, used, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}
	if f.noCache {
		cfg.CachePath = ""
	}

	log := ui.NewLogger(cfg.Debug)
	log.Debugf("config: %s", strings.TrimSpace(used))

	g, err := resist.GameFor(cfg.Game)
	if err != nil {
		return nil, err
	}
	if cfg.Variant != "" {
		g = g.WithVariant(cfg.Variant)
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("http client: %w", err)
	}

	s := &session{cfg: cfg, log: log, game: g}

	if cfg.CachePath != "" {
		cache, err := pagecache.Open(cfg.CachePath, cfg.CacheTTL())
		if err != nil {
			log.Warnf("page cache disabled: %v", err)
		} else {
			log.Debugf("page cache: %s (ttl %s)", cfg.CachePath, cfg.CacheTTL())
			s.cache = cache
		}
	}

	s.source = fandom.NewClient(client, cfg.BaseURL, log, s.cache)
	s.stop = util.SetupInterruptHandler(s.release)

	return s, nil
}

func (s *session) release() {
	s.closeOnce.Do(func() {
		if s.cache != nil {
			if err := s.cache.Close(); err != nil {
				s.log.Warnf("closing page cache: %v", err)
			}
		}
		s.log.Sync()
	})
}

func (s *session) Close() {
	s.stop()
	s.release()
}
