// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// HTTPServerService runs the API server under the supervisor. Every call to
// Serve binds a fresh listener on server.Addr, so a restart after a listener
// failure rebinds instead of reusing a dead socket.
//
//	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
type HTTPServerService struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	name            string

	mu    sync.Mutex
	addr  net.Addr
	bound chan struct{}
	once  sync.Once
}

// NewHTTPServerService wraps server. shutdownTimeout bounds how long
// in-flight requests may take to drain; a non-positive value selects 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http").Logger(),
		name:            "http-server",
		bound:           make(chan struct{}),
	}
}

// Serve implements suture.Service.
//
// A listen or accept failure is returned so the supervisor retries. A server
// closed from outside returns suture.ErrDoNotRestart, since a closed
// http.Server cannot serve again. On cancellation the server drains
// in-flight requests for up to the shutdown timeout, then closes the rest.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}
	h.markBound(ln.Addr())
	h.logger.Info().Str("addr", ln.Addr().String()).Msg("http server listening")

	served := make(chan error, 1)
	go func() { served <- h.server.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			h.logger.Warn().Msg("http server closed outside the supervisor")
			return suture.ErrDoNotRestart
		}
		return fmt.Errorf("serve %s: %w", ln.Addr(), err)

	case <-ctx.Done():
	}

	// ctx is already done; draining needs its own deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	start := time.Now()
	if err := h.server.Shutdown(drainCtx); err != nil {
		h.logger.Warn().Err(err).Dur("timeout", h.shutdownTimeout).Msg("drain timed out, closing remaining connections")
		_ = h.server.Close()
	}
	<-served
	h.logger.Info().Dur("drain", time.Since(start)).Msg("http server stopped")
	return ctx.Err()
}

func (h *HTTPServerService) markBound(addr net.Addr) {
	h.mu.Lock()
	h.addr = addr
	h.mu.Unlock()
	h.once.Do(func() { close(h.bound) })
}

// Bound is closed once Serve has bound its first listener.
func (h *HTTPServerService) Bound() <-chan struct{} {
	return h.bound
}

// Addr returns the address of the most recent listener, or nil before the
// first bind. With port 0 in server.Addr this is the port actually chosen.
func (h *HTTPServerService) Addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}

// String names the service in supervisor events.
func (h *HTTPServerService) String() string {
	return h.name
}
