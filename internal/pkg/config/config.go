package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Leagues  LeaguesConfig  `yaml:"leagues"`
	View     ViewConfig     `yaml:"view"`
}

type TelegramConfig struct {
	// Token is usually left empty here and supplied via TELEGRAM_BOT_TOKEN.
	Token         string `yaml:"token"`
	UpdateTimeout int    `yaml:"update_timeout"`
}

type UpstreamConfig struct {
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

type LeaguesConfig struct {
	Soccer     []models.League `yaml:"soccer"`
	Basketball []models.League `yaml:"basketball"`
	Tennis     []models.League `yaml:"tennis"`
}

type ViewConfig struct {
	PageSize int `yaml:"page_size"`
}

// Default returns the compiled-in configuration: the competitions the bot
// covers out of the box and the upstream limits the providers expect.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{
			UpdateTimeout: 60,
		},
		Upstream: UpstreamConfig{
			UserAgent:         "fixturebot/1.0",
			Timeout:           25 * time.Second,
			RequestsPerSecond: 8,
			Burst:             16,
		},
		Cache: CacheConfig{
			TTL:        60 * time.Second,
			MaxEntries: 2048,
		},
		Leagues: LeaguesConfig{
			Soccer: []models.League{
				{Code: "eng.1", Name: "Premier League"},
				{Code: "esp.1", Name: "LaLiga"},
				{Code: "ita.1", Name: "Serie A"},
				{Code: "fra.1", Name: "Ligue 1"},
				{Code: "ger.1", Name: "Bundesliga"},
				{Code: "uefa.champions", Name: "UEFA Champions League"},
				{Code: "uefa.europa", Name: "UEFA Europa League"},
				{Code: "uefa.europa.conf", Name: "UEFA Conference League"},
				{Code: "fifa.world", Name: "International (FIFA)"},
			},
			Basketball: []models.League{
				{Code: "nba", Name: "NBA"},
				{Code: "euroleague", Name: "EuroLeague"},
				// Not covered by the provider in every region.
				{Code: "france-lnb", Name: "Betclic ÉLITE"},
			},
			Tennis: []models.League{
				{Code: "atp", Name: "ATP"},
				{Code: "wta", Name: "WTA"},
			},
		},
		View: ViewConfig{
			PageSize: 10,
		},
	}
}

// Load reads the yaml config at configPath over the defaults. A missing file
// is not an error; the defaults stand on their own.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive")
	}
	if c.View.PageSize <= 0 {
		return fmt.Errorf("view.page_size must be positive")
	}
	if len(c.Leagues.Soccer) == 0 || len(c.Leagues.Basketball) == 0 || len(c.Leagues.Tennis) == 0 {
		return fmt.Errorf("leagues must not be empty")
	}
	return nil
}
