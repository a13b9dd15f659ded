package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/alts-fund-link/fundlink/internal/basket"
	"github.com/alts-fund-link/fundlink/internal/config"
	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/feed"
	"github.com/alts-fund-link/fundlink/internal/nav"
	"github.com/alts-fund-link/fundlink/internal/profile"
	"github.com/alts-fund-link/fundlink/internal/recorder"
	"github.com/alts-fund-link/fundlink/internal/scheduler"
	"github.com/alts-fund-link/fundlink/internal/store"
)

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("feed", cfg.Feed.URL).Msg("fundlink starting")

	if err := os.MkdirAll(filepath.Dir(cfg.Store.BoltPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("create data directory")
	}

	// Durable store; session cache is in-memory.
	var durable store.Store
	bolt, err := store.NewBoltStore(cfg.Store.BoltPath, log)
	if err != nil {
		log.Warn().Err(err).Msg("bolt store unavailable, state will not survive restarts")
		durable = store.NewMemoryStore()
	} else {
		durable = bolt
		defer bolt.Close()
	}
	session := store.NewMemoryStore()

	// History recorder, noop when sqlite cannot be opened.
	var rec recorder.Recorder
	var pruner scheduler.Pruner
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			pruner = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	bus := events.NewBus()
	bus.Subscribe(func(evt any) {
		switch e := evt.(type) {
		case events.BasketChanged:
			log.Debug().Int("count", e.Count).Msg("basket changed")
		case events.FundsRefreshed:
			log.Debug().Int("count", e.Count).Msg("funds refreshed")
		}
	})

	fetcher := feed.NewGvizFetcher(cfg.Feed.URL, cfg.Proxy)
	feedSvc := feed.NewService(fetcher, session, rec, bus, time.Now, log)

	profiles := profile.NewStore(durable, bus, log)
	baskets := basket.NewManager(durable, bus, rec, log)
	navigator := nav.New(durable, bus)
	log.Info().
		Bool("profile_set", profiles.IsSet()).
		Int("basket", baskets.Count()).
		Str("module", navigator.Module()).
		Msg("session state restored")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, feedSvc, pruner, log)
	if err := sched.RegisterAll(cfg.Feed.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, refreshing feed now")
		go sched.RunRefreshNow()
	}

	log.Info().Msg("fundlink is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}
