package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fixturebot/fixturebot/internal/bot"
	"github.com/fixturebot/fixturebot/internal/cache"
	"github.com/fixturebot/fixturebot/internal/controller"
	"github.com/fixturebot/fixturebot/internal/enrich"
	"github.com/fixturebot/fixturebot/internal/pipeline"
	"github.com/fixturebot/fixturebot/internal/pkg/config"
	"github.com/fixturebot/fixturebot/internal/pkg/logging"
	"github.com/fixturebot/fixturebot/internal/providers/espn"
	"github.com/fixturebot/fixturebot/internal/providers/mlb"
	"github.com/fixturebot/fixturebot/internal/providers/nhl"
	"github.com/fixturebot/fixturebot/internal/session"
	"github.com/fixturebot/fixturebot/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var (
		configPath string
		token      string
	)
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to yaml config (optional, defaults are compiled in)")
	flag.StringVar(&token, "token", "", "Telegram bot token (or set TELEGRAM_BOT_TOKEN)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if token == "" {
		token = cfg.Telegram.Token
	}
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("telegram bot token is required: set -token, telegram.token in config, or TELEGRAM_BOT_TOKEN")
	}

	logger := logging.Setup("bot")

	responseCache := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	httpClient := upstream.New(responseCache, upstream.Options{
		UserAgent:         cfg.Upstream.UserAgent,
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	})

	espnClient := espn.NewClient(httpClient, "")
	nhlClient := nhl.NewClient(httpClient, "")
	mlbClient := mlb.NewClient(httpClient, "")

	matches := pipeline.New(espnClient, cfg.Leagues.Soccer, cfg.Leagues.Tennis)
	enricher := enrich.New(espnClient, nhlClient, mlbClient)

	ctrl := controller.New(session.NewStore(), matches, enricher, cfg.Leagues.Basketball, cfg.View.PageSize)

	b, err := bot.New(token, ctrl, cfg.Telegram.UpdateTimeout)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting bot",
		"cache_ttl", cfg.Cache.TTL,
		"page_size", cfg.View.PageSize,
		"soccer_leagues", len(cfg.Leagues.Soccer))

	if err := b.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("bot stopped")
	return nil
}
