// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package api

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	_ "github.com/tomtom215/moviesense/docs"
)

type openAPIDoc struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	BasePath string                                `json:"basePath"`
	Paths    map[string]map[string]json.RawMessage `json:"paths"`
}

func TestSwaggerDocument(t *testing.T) {
	handler, _ := newTestServer(t, nil, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json = %d, want 200", rec.Code)
	}

	var doc openAPIDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	if doc.Info.Title != "MovieSense API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("basePath = %q, want /api/v1", doc.BasePath)
	}

	// Every GET route under the base path is documented, and nothing else.
	routes, ok := handler.(chi.Routes)
	if !ok {
		t.Fatalf("router is %T, want chi.Routes", handler)
	}
	var served []string
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method != http.MethodGet || !strings.HasPrefix(route, "/api/v1/") {
			return nil
		}
		served = append(served, strings.TrimSuffix(strings.TrimPrefix(route, "/api/v1"), "/"))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	var documented []string
	for path, ops := range doc.Paths {
		if _, ok := ops["get"]; !ok {
			t.Errorf("%s has no GET operation", path)
		}
		documented = append(documented, path)
	}
	sort.Strings(served)
	sort.Strings(documented)
	if strings.Join(served, " ") != strings.Join(documented, " ") {
		t.Errorf("documented paths = %v\nserved routes    = %v", documented, served)
	}
}

func TestSwaggerUI(t *testing.T) {
	handler, _ := newTestServer(t, nil, testConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("index.html = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Error("index.html does not mount the swagger-ui element")
	}
}
