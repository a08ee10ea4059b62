// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviesense/internal/metrics"
	"github.com/tomtom215/moviesense/internal/recommend"
)

// ErrNoCatalogPath is returned by NewCatalogService for an empty path.
var ErrNoCatalogPath = errors.New("catalog path is required")

// EngineLoader builds an engine from the dataset at path.
type EngineLoader func(ctx context.Context, path string) (*recommend.Engine, error)

// EngineSetter receives every successfully rebuilt engine.
type EngineSetter interface {
	SetEngine(eng *recommend.Engine)
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// Path is the dataset file to watch.
	Path string

	// ReloadInterval is how often the file is checked for changes. A
	// non-positive interval makes Serve exit without being restarted.
	ReloadInterval time.Duration

	// LoadTimeout bounds a single rebuild.
	// Default: 5m
	LoadTimeout time.Duration
}

// fileVersion identifies one revision of the dataset file.
type fileVersion struct {
	modTime time.Time
	size    int64
}

func (v fileVersion) same(o fileVersion) bool {
	return v.size == o.size && v.modTime.Equal(o.modTime)
}

func (v fileVersion) isZero() bool {
	return v.size == 0 && v.modTime.IsZero()
}

// CatalogService rebuilds the engine whenever the dataset file changes on
// disk. A failed rebuild is logged and counted; the previous engine keeps
// serving until a later revision of the file builds successfully.
type CatalogService struct {
	loader EngineLoader
	sink   EngineSetter
	config CatalogServiceConfig
	logger zerolog.Logger
	name   string

	// stat is os.Stat outside tests.
	stat func(string) (os.FileInfo, error)

	mu   sync.Mutex
	last fileVersion
}

// NewCatalogService creates a catalog service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(loader EngineLoader, sink EngineSetter, cfg CatalogServiceConfig, logger zerolog.Logger) (*CatalogService, error) {
	if cfg.Path == "" {
		return nil, ErrNoCatalogPath
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Minute
	}
	return &CatalogService{
		loader: loader,
		sink:   sink,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Str("path", cfg.Path).Logger(),
		name:   "catalog-service",
		stat:   os.Stat,
	}, nil
}

// Serve implements suture.Service. The revision present when Serve starts is
// taken as already loaded.
func (s *CatalogService) Serve(ctx context.Context) error {
	if s.config.ReloadInterval <= 0 {
		s.logger.Info().Msg("catalog reloading disabled")
		return suture.ErrDoNotRestart
	}

	s.mu.Lock()
	if v, err := s.version(); err == nil && s.last.isZero() {
		s.last = v
	}
	s.mu.Unlock()

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.config.ReloadInterval).Msg("catalog service running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.ReloadIfChanged(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous engine")
			}
		}
	}
}

// ReloadIfChanged rebuilds the engine when the file differs from the last
// revision seen. It reports whether a new engine was installed.
func (s *CatalogService) ReloadIfChanged(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.version()
	if err != nil {
		return false, fmt.Errorf("stat catalog: %w", err)
	}
	if v.same(s.last) {
		return false, nil
	}
	// A revision that fails to build is not retried until the file changes again.
	s.last = v

	if err := s.reload(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Reload rebuilds the engine unconditionally.
func (s *CatalogService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, err := s.version(); err == nil {
		s.last = v
	}
	return s.reload(ctx)
}

func (s *CatalogService) reload(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	eng, err := s.loader(loadCtx, s.config.Path)
	if err != nil {
		metrics.RecordCatalogReload(false)
		return err
	}

	s.sink.SetEngine(eng)
	metrics.RecordCatalogReload(true)

	st := eng.Stats()
	s.logger.Info().
		Int("movies", st.Movies).
		Int("unique_titles", st.UniqueTitles).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
	return nil
}

func (s *CatalogService) version() (fileVersion, error) {
	info, err := s.stat(s.config.Path)
	if err != nil {
		return fileVersion{}, err
	}
	return fileVersion{modTime: info.ModTime(), size: info.Size()}, nil
}

// String names the service in supervisor events.
func (s *CatalogService) String() string {
	return s.name
}
