package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/trackeo/trackeo-web/internal/api"
	"github.com/trackeo/trackeo-web/internal/api/handler"
	"github.com/trackeo/trackeo-web/internal/backend"
	"github.com/trackeo/trackeo-web/internal/config"
	"github.com/trackeo/trackeo-web/internal/core/domain"
	"github.com/trackeo/trackeo-web/internal/core/ports"
	"github.com/trackeo/trackeo-web/internal/core/service"
	"github.com/trackeo/trackeo-web/internal/infrastructure/vault"
	"github.com/trackeo/trackeo-web/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	var prefVault ports.PreferenceVault = vault.NewMemoryVault()
	if cfg.Redis.Addr != "" {
		client, err := vault.Connect(ctx, vault.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, visitor preferences are in-memory only")
		} else {
			defer client.Close()
			prefVault = vault.NewRedisVault(client, log)
		}
	}

	gateway := backend.New(cfg.BackendURL, log)
	catalog := service.NewCatalogService(gateway, service.NewStore(), clock, log)

	if cfg.SeedFile != "" {
		if err := hydrateFromFile(catalog.Store(), cfg.SeedFile); err != nil {
			log.Warn().Err(err).Str("file", cfg.SeedFile).Msg("seed snapshot not loaded")
		}
	}

	app := &handler.App{
		Catalog: catalog,
		Gateway: gateway,
		Vault:   prefVault,
		Clock:   clock,
		Logger:  log,
	}

	e, err := api.NewRouter(app)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	// Keep the store warm so search and the landing page have fresh data
	// even before the first visitor arrives.
	refresher := service.NewRefresher(catalog, clock, log)
	go refresher.Run(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}

// hydrateFromFile merges a JSON home snapshot into the store. Collections
// absent from the file are left alone.
func hydrateFromFile(store *service.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var snap domain.HomeSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return err
	}
	store.HydrateHome(snap)
	return nil
}
