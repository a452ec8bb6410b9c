package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/georgemunganga/vendor-panel/internal/config"
	"github.com/georgemunganga/vendor-panel/internal/modules/dashboard"
	"github.com/georgemunganga/vendor-panel/internal/modules/mapview"
	"github.com/georgemunganga/vendor-panel/internal/modules/notify"
	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
	"github.com/georgemunganga/vendor-panel/internal/telemetry"
)

func main() {
	cfg, err := config.Load(os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Seed ─────────────────────────────────────────────────
	var seedRepo vendor.SeedRepository = vendor.NewStaticSeedRepository()
	if cfg.SeedFile != "" {
		seedRepo = vendor.NewFileSeedRepository(cfg.SeedFile)
	}
	seed, err := seedRepo.LoadSeed(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("Loaded vendor seed", slog.Int("vendors", len(seed)), slog.String("file", cfg.SeedFile))

	// ── Store ────────────────────────────────────────────────
	feed := notify.NewFeed(cfg.NotificationTTL, cfg.NotificationCapacity)
	metrics := telemetry.NewMetrics()
	metrics.SetVendors(len(seed))

	vendorStore := store.New(seed,
		store.WithNotifier(feed),
		store.WithLogger(logger),
		store.WithObserver(metrics),
	)

	tracker := mapview.NewTracker(vendorStore, logger)

	// ── Router ───────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	dashboard.NewHandler(dashboard.NewService(vendorStore)).RegisterRoutes(router)
	mapview.NewHandler(tracker).RegisterRoutes(router)
	notify.NewHandler(feed).RegisterRoutes(router)
	router.Handle("/metrics", metrics.Handler())

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Vendor panel API starting on %s\n", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router))
}
