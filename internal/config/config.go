package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "https://megamitensei.fandom.com"

type Config struct {
	Game    string `yaml:"game"`
	Variant string `yaml:"variant"`
	Format  string `yaml:"format"`
	Workers int    `yaml:"workers"`
	Debug   bool   `yaml:"debug"`
	NoColor bool   `yaml:"no_color"`

	BaseURL          string `yaml:"base_url"`
	UserAgent        string `yaml:"user_agent"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`

	CachePath     string `yaml:"cache_path"`
	CacheTTLHours int    `yaml:"cache_ttl_hours"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Game             string
	Variant          string
	Format           string
	Workers          int
	NoColor          bool
	BaseURL          string
	UserAgent        string
	TimeoutSeconds   int
	CloudflareBypass bool
	CachePath        string
	CacheTTLHours    int
}

var formats = []string{"text", "json", "yaml"}

func DefaultConfig() *Config {
	return &Config{
		Game:             "3j",
		Variant:          "",
		Format:           "",
		Workers:          1,
		Debug:            false,
		NoColor:          false,
		BaseURL:          DefaultBaseURL,
		UserAgent:        "",
		TimeoutSeconds:   30,
		CloudflareBypass: false,
		CachePath:        "",
		CacheTTLHours:    24 * 7,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		return cfg, "(ignored config)", normalize(cfg)
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		return cfg, "(default config in memory)\nRun `shadowres config init` to create an actual config\n", normalize(cfg)
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	if err := normalize(cfg); err != nil {
		return nil, "", fmt.Errorf("config %s: %w", activePath, err)
	}

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.Game != "" {
		c.Game = o.Game
	}
	if o.Variant != "" {
		c.Variant = o.Variant
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.NoColor {
		c.NoColor = true
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.CachePath != "" {
		c.CachePath = o.CachePath
	}
	if o.CacheTTLHours != 0 {
		c.CacheTTLHours = o.CacheTTLHours
	}
}

func normalize(c *Config) error {
	if c.Game == "" {
		c.Game = "3j"
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != "" && !validFormat(c.Format) {
		return fmt.Errorf("unknown format %q (one of: %s)", c.Format, strings.Join(formats, ", "))
	}

	return nil
}

func validFormat(f string) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

func (c *Config) Print() {
	fmt.Printf(" -game: %s\n", c.Game)
	if c.Variant != "" {
		fmt.Printf(" -variant: %s\n", c.Variant)
	}
	if c.Format != "" {
		fmt.Printf(" -format: %s\n", c.Format)
	}
	fmt.Printf(" -workers: %d\n", c.Workers)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.NoColor {
		fmt.Printf(" -no_color: %t\n", c.NoColor)
	}
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.CachePath != "" {
		fmt.Printf(" -cache_path: %s\n", c.CachePath)
		fmt.Printf(" -cache_ttl_hours: %d\n", c.CacheTTLHours)
	}
}
