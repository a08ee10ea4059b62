// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviesense/internal/metrics"
	"github.com/tomtom215/moviesense/internal/recommend"
)

const twoMovies = `MovieTitle,Genre,Year,Rating,PosterURL
Inception,"Action, Sci-Fi",2010,8.8,
Heat,"Action, Crime",1995,8.3,
`

const threeMovies = twoMovies + `Up,"Animation, Adventure",2009,8.2,
`

// A row longer than its header makes the source unreadable.
const brokenCatalog = `MovieTitle,Genre
Inception,Action,2010,extra
`

type engineRecorder struct {
	mu      sync.Mutex
	engines []*recommend.Engine
}

func (r *engineRecorder) SetEngine(eng *recommend.Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = append(r.engines, eng)
}

func (r *engineRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

func (r *engineRecorder) latest() *recommend.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.engines) == 0 {
		return nil
	}
	return r.engines[len(r.engines)-1]
}

func loadEngine(ctx context.Context, path string) (*recommend.Engine, error) {
	return recommend.LoadEngine(ctx, path, recommend.DefaultConfig(), zerolog.Nop())
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func newTestCatalogService(t *testing.T, content string, interval time.Duration) (*CatalogService, *engineRecorder, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	writeCatalog(t, path, content)

	sink := &engineRecorder{}
	svc, err := NewCatalogService(loadEngine, sink, CatalogServiceConfig{
		Path:           path,
		ReloadInterval: interval,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalogService() error = %v", err)
	}
	return svc, sink, path
}

var _ suture.Service = (*CatalogService)(nil)

func TestNewCatalogService(t *testing.T) {
	_, err := NewCatalogService(loadEngine, &engineRecorder{}, CatalogServiceConfig{}, zerolog.Nop())
	if !errors.Is(err, ErrNoCatalogPath) {
		t.Errorf("empty path error = %v, want ErrNoCatalogPath", err)
	}

	svc, _, _ := newTestCatalogService(t, twoMovies, time.Minute)
	if svc.config.LoadTimeout != 5*time.Minute {
		t.Errorf("default load timeout = %v, want 5m", svc.config.LoadTimeout)
	}
	if svc.String() != "catalog-service" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCatalogService_Reload(t *testing.T) {
	svc, sink, _ := newTestCatalogService(t, twoMovies, time.Minute)
	before := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("success"))

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if sink.count() != 1 {
		t.Fatalf("engines installed = %d, want 1", sink.count())
	}
	if got := sink.latest().Stats().Movies; got != 2 {
		t.Errorf("movies = %d, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("success")); got != before+1 {
		t.Errorf("success reloads = %v, want %v", got, before+1)
	}

	changed, err := svc.ReloadIfChanged(context.Background())
	if err != nil || changed {
		t.Errorf("unchanged file: changed=%v err=%v", changed, err)
	}
}

func TestCatalogService_ReloadIfChanged(t *testing.T) {
	svc, sink, path := newTestCatalogService(t, twoMovies, time.Minute)
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	writeCatalog(t, path, threeMovies)
	changed, err := svc.ReloadIfChanged(context.Background())
	if err != nil {
		t.Fatalf("ReloadIfChanged() error = %v", err)
	}
	if !changed {
		t.Fatal("expected a reload after the file grew")
	}
	if got := sink.latest().Stats().Movies; got != 3 {
		t.Errorf("movies after reload = %d, want 3", got)
	}
}

func TestCatalogService_FailedReloadKeepsEngine(t *testing.T) {
	svc, sink, path := newTestCatalogService(t, twoMovies, time.Minute)
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	before := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("failure"))

	writeCatalog(t, path, brokenCatalog)
	changed, err := svc.ReloadIfChanged(context.Background())
	if err == nil {
		t.Fatal("expected an error for an unreadable catalog")
	}
	if changed {
		t.Error("failed reload reported a change")
	}
	if sink.count() != 1 {
		t.Errorf("engines installed = %d, want the original only", sink.count())
	}
	if got := testutil.ToFloat64(metrics.CatalogReloads.WithLabelValues("failure")); got != before+1 {
		t.Errorf("failed reloads = %v, want %v", got, before+1)
	}

	// The broken revision is not retried until the file changes again.
	changed, err = svc.ReloadIfChanged(context.Background())
	if err != nil || changed {
		t.Errorf("retry of same revision: changed=%v err=%v", changed, err)
	}
}

func TestCatalogService_MissingFile(t *testing.T) {
	svc, _, path := newTestCatalogService(t, twoMovies, time.Minute)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ReloadIfChanged(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestCatalogService_ServeDisabled(t *testing.T) {
	svc, _, _ := newTestCatalogService(t, twoMovies, 0)

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want suture.ErrDoNotRestart", err)
	}
}

func TestCatalogService_ServePicksUpChanges(t *testing.T) {
	svc, sink, path := newTestCatalogService(t, twoMovies, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	// The revision present at startup counts as loaded.
	time.Sleep(50 * time.Millisecond)
	if sink.count() != 0 {
		t.Errorf("engines installed before any change = %d, want 0", sink.count())
	}

	writeCatalog(t, path, threeMovies)

	deadline := time.After(2 * time.Second)
	for sink.count() == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("change was not picked up")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Serve did not return after cancellation")
	}

	if got := sink.latest().Stats().Movies; got != 3 {
		t.Errorf("movies = %d, want 3", got)
	}
}

type fakeFileInfo struct {
	os.FileInfo
	modTime time.Time
	size    int64
}

func (f fakeFileInfo) ModTime() time.Time { return f.modTime }
func (f fakeFileInfo) Size() int64        { return f.size }

func TestCatalogService_SameInstantIsUnchanged(t *testing.T) {
	svc, sink, _ := newTestCatalogService(t, twoMovies, 0)

	// time.Now carries a monotonic reading; the same instant seen again
	// in another location does not.
	first := time.Now()
	again := first.Round(0).In(time.FixedZone("UTC+5", 5*60*60))

	svc.stat = func(string) (os.FileInfo, error) {
		return fakeFileInfo{modTime: first, size: int64(len(twoMovies))}, nil
	}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	svc.stat = func(string) (os.FileInfo, error) {
		return fakeFileInfo{modTime: again, size: int64(len(twoMovies))}, nil
	}
	changed, err := svc.ReloadIfChanged(context.Background())
	if err != nil {
		t.Fatalf("ReloadIfChanged() error = %v", err)
	}
	if changed {
		t.Error("same modification instant in another location should not trigger a reload")
	}
	if sink.count() != 1 {
		t.Errorf("engines installed = %d, want 1", sink.count())
	}

	svc.stat = func(string) (os.FileInfo, error) {
		return fakeFileInfo{modTime: again.Add(time.Second), size: int64(len(twoMovies))}, nil
	}
	if changed, err := svc.ReloadIfChanged(context.Background()); err != nil || !changed {
		t.Errorf("ReloadIfChanged() after a newer mtime = %v, %v; want true, nil", changed, err)
	}
}
