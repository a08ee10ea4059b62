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
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviesense/internal/api"
	"github.com/tomtom215/moviesense/internal/config"
	"github.com/tomtom215/moviesense/internal/models"
)

var _ suture.Service = (*HTTPServerService)(nil)

func apiRouter(handler *api.Handler) http.Handler {
	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	return api.NewRouter(handler, cfg).SetupChi()
}

func loopbackServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// startHTTPService runs svc until the test ends and waits for its listener.
func startHTTPService(t *testing.T, svc *HTTPServerService) (context.CancelFunc, <-chan error, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	t.Cleanup(cancel)

	select {
	case <-svc.Bound():
	case err := <-done:
		t.Fatalf("Serve() exited before binding: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener not bound within 5s")
	}
	return cancel, done, "http://" + svc.Addr().String()
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return within 5s")
		return nil
	}
}

func statusOf(t *testing.T, url string) int {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // test helper
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func recommendationTitles(t *testing.T, resp *http.Response) []string {
	t.Helper()
	defer resp.Body.Close()
	var env struct {
		Status string                 `json:"status"`
		Data   models.Recommendations `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Status != "success" {
		t.Fatalf("status = %q, want success", env.Status)
	}
	titles := make([]string, len(env.Data.Results))
	for i, r := range env.Data.Results {
		titles[i] = r.Title
	}
	return titles
}

func TestNewHTTPServerServiceDefaults(t *testing.T) {
	svc := NewHTTPServerService(loopbackServer(nil), 0, zerolog.Nop())
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q, want http-server", svc.String())
	}
	if svc.Addr() != nil {
		t.Errorf("Addr() before Serve = %v, want nil", svc.Addr())
	}
}

func TestHTTPServerServiceReadinessFollowsCatalog(t *testing.T) {
	handler := api.NewHandler(nil, "test")
	svc := NewHTTPServerService(loopbackServer(apiRouter(handler)), time.Second, zerolog.Nop())
	_, _, base := startHTTPService(t, svc)

	if got := statusOf(t, base+"/api/v1/health/ready"); got != http.StatusServiceUnavailable {
		t.Fatalf("ready before load = %d, want 503", got)
	}
	if got := statusOf(t, base+"/api/v1/health/live"); got != http.StatusOK {
		t.Errorf("live before load = %d, want 200", got)
	}

	path := filepath.Join(t.TempDir(), "movies.csv")
	writeCatalog(t, path, twoMovies)
	catalogSvc, err := NewCatalogService(loadEngine, handler, CatalogServiceConfig{Path: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogService() error = %v", err)
	}
	if err := catalogSvc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if got := statusOf(t, base+"/api/v1/health/ready"); got != http.StatusOK {
		t.Fatalf("ready after load = %d, want 200", got)
	}

	resp, err := http.Get(base + "/api/v1/recommendations?q=2010") //nolint:noctx // test
	if err != nil {
		t.Fatal(err)
	}
	if titles := recommendationTitles(t, resp); len(titles) != 1 || titles[0] != "Inception" {
		t.Errorf("titles = %v, want [Inception]", titles)
	}
}

// gateRecommendations holds recommendation requests until release is closed.
func gateRecommendations(next http.Handler, entered chan<- struct{}, release <-chan struct{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/recommendations" {
			entered <- struct{}{}
			<-release
		}
		next.ServeHTTP(w, r)
	})
}

func TestHTTPServerServiceDrainsInFlightRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	writeCatalog(t, path, twoMovies)
	eng, err := loadEngine(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	router := apiRouter(api.NewHandler(eng, "test"))
	svc := NewHTTPServerService(loopbackServer(gateRecommendations(router, entered, release)), 5*time.Second, zerolog.Nop())
	cancel, done, base := startHTTPService(t, svc)

	type result struct {
		resp *http.Response
		err  error
	}
	inflight := make(chan result, 1)
	go func() {
		resp, err := http.Get(base + "/api/v1/recommendations?q=action") //nolint:noctx // test
		inflight <- result{resp, err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}

	cancel()

	select {
	case err := <-done:
		t.Fatalf("Serve() returned %v while a request was in flight", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	res := <-inflight
	if res.err != nil {
		t.Fatalf("in-flight request failed: %v", res.err)
	}
	if res.resp.StatusCode != http.StatusOK {
		t.Fatalf("in-flight status = %d, want 200", res.resp.StatusCode)
	}
	if titles := recommendationTitles(t, res.resp); len(titles) != 2 {
		t.Errorf("titles = %v, want both action movies", titles)
	}

	if err := waitServe(t, done); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}

	if _, err := http.Get(base + "/api/v1/health/live"); err == nil { //nolint:noctx,bodyclose // test
		t.Error("listener still accepting after shutdown")
	}
}

func TestHTTPServerServiceDrainTimeoutClosesConnections(t *testing.T) {
	entered := make(chan struct{}, 1)
	stuck := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-r.Context().Done()
	})
	svc := NewHTTPServerService(loopbackServer(stuck), 50*time.Millisecond, zerolog.Nop())
	cancel, done, base := startHTTPService(t, svc)

	clientErr := make(chan error, 1)
	go func() {
		resp, err := http.Get(base + "/") //nolint:noctx // test
		if err == nil {
			resp.Body.Close()
		}
		clientErr <- err
	}()
	<-entered

	start := time.Now()
	cancel()
	if err := waitServe(t, done); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("shutdown took %v, want about the 50ms drain timeout", elapsed)
	}
	if err := <-clientErr; err == nil {
		t.Error("stuck request should fail once its connection is closed")
	}
}

func TestHTTPServerServiceListenFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	srv := loopbackServer(http.NotFoundHandler())
	srv.Addr = taken.Addr().String()
	svc := NewHTTPServerService(srv, time.Second, zerolog.Nop())

	err = svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve() on a taken port should fail")
	}
	if errors.Is(err, suture.ErrDoNotRestart) {
		t.Error("a listen failure should be retried by the supervisor")
	}
	select {
	case <-svc.Bound():
		t.Error("Bound() closed although nothing was bound")
	default:
	}
}

func TestHTTPServerServiceClosedOutsideSupervisor(t *testing.T) {
	srv := loopbackServer(http.NotFoundHandler())
	svc := NewHTTPServerService(srv, time.Second, zerolog.Nop())
	_, done, _ := startHTTPService(t, svc)

	if err := srv.Close(); err != nil {
		t.Fatal(err)
	}
	if err := waitServe(t, done); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want suture.ErrDoNotRestart", err)
	}
}

func TestHTTPServerServiceRebindsAfterRestart(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := taken.Addr().String()

	var failed atomic.Bool
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	})
	srv := loopbackServer(ok)
	srv.Addr = addr
	svc := NewHTTPServerService(srv, time.Second, zerolog.Nop())

	sup := suture.New("api-layer-test", suture.Spec{
		FailureThreshold: 1000,
		FailureBackoff:   10 * time.Millisecond,
		EventHook: func(e suture.Event) {
			if e.Type() == suture.EventTypeServiceTerminate {
				failed.Store(true)
			}
		},
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	supDone := sup.ServeBackground(ctx)

	// Let at least one attempt fail on the taken port.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if failed.Load() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no failed listen attempt observed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	taken.Close()

	select {
	case <-svc.Bound():
	case <-time.After(5 * time.Second):
		t.Fatal("service did not rebind after the port was freed")
	}
	if got := statusOf(t, "http://"+addr+"/"); got != http.StatusOK {
		t.Errorf("status after rebind = %d, want 200", got)
	}

	cancel()
	select {
	case <-supDone:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
