// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/moviesense/internal/api"
	"github.com/tomtom215/moviesense/internal/config"
	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/metrics"
	"github.com/tomtom215/moviesense/internal/recommend"
	"github.com/tomtom215/moviesense/internal/supervisor"
	"github.com/tomtom215/moviesense/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Path).
		Str("matcher", cfg.Recommend.Matcher).
		Str("environment", cfg.Server.Environment).
		Msg("Starting MovieSense")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	metrics.SetAppInfo(version, runtime.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := api.NewHandler(nil, version)

	catalogSvc, err := services.NewCatalogService(engineLoader(cfg), handler, services.CatalogServiceConfig{
		Path:           cfg.Catalog.Path,
		ReloadInterval: cfg.Catalog.ReloadInterval,
	}, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create catalog service")
	}

	// The first load is synchronous: a catalog that cannot be read is fatal.
	if err := catalogSvc.Reload(ctx); err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Catalog.ReloadInterval > 0 {
		tree.AddCatalogService(catalogSvc)
		logging.Info().Dur("interval", cfg.Catalog.ReloadInterval).Msg("Catalog reload service added")
	}

	server := newHTTPServer(cfg, api.NewRouter(handler, cfg).SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				logging.Info().Msg("Received SIGHUP, reloading catalog")
				if err := catalogSvc.Reload(ctx); err != nil {
					logging.Error().Err(err).Msg("Catalog reload failed, keeping previous engine")
				}
				continue
			}
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
			return
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("MovieSense stopped gracefully")
}

// engineLoader builds engines with the configured recommendation settings.
func engineLoader(cfg *config.Config) services.EngineLoader {
	recCfg := cfg.Recommend.Clone()
	return func(ctx context.Context, path string) (*recommend.Engine, error) {
		return recommend.LoadEngine(ctx, path, recCfg, logging.Logger())
	}
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
