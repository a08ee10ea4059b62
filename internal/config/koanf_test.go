// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every mapped variable plus CONFIG_PATH for the duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.Path != "data/movies.csv" {
		t.Errorf("Catalog.Path = %q, want data/movies.csv", cfg.Catalog.Path)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.Limits.DefaultK != 10 {
		t.Errorf("Recommend.Limits.DefaultK = %d, want 10", cfg.Recommend.Limits.DefaultK)
	}
	if cfg.Recommend.Matcher != "ratio" {
		t.Errorf("Recommend.Matcher = %q, want ratio", cfg.Recommend.Matcher)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"MOVIESENSE_CATALOG_PATH", "catalog.path"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"RECOMMEND_DEFAULT_K", "recommend.limits.default_k"},
		{"RECOMMEND_FUZZY_THRESHOLD", "recommend.fuzzy_threshold"},
		{"RECOMMEND_MATCHER", "recommend.matcher"},
		{"RECOMMEND_GENRE_ALIASES", "recommend.genre_aliases"},
		{"recommend_stem", "recommend.similarity.stem"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	isolateEnv(t)

	t.Run("no file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("CONFIG_PATH wins", func(t *testing.T) {
		path := writeConfigFile(t, "server:\n  port: 9000\n")
		t.Setenv(ConfigPathEnvVar, path)
		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("missing CONFIG_PATH falls through", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(ConfigPathEnvVar, "/nonexistent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("MOVIESENSE_CATALOG_PATH", "/data/movies.parquet")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_DEFAULT_K", "12")
	t.Setenv("RECOMMEND_FUZZY_THRESHOLD", "0.75")
	t.Setenv("RECOMMEND_MATCHER", "levenshtein")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Path != "/data/movies.parquet" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Limits.DefaultK != 12 {
		t.Errorf("Recommend.Limits.DefaultK = %d, want 12", cfg.Recommend.Limits.DefaultK)
	}
	if cfg.Recommend.FuzzyThreshold != 0.75 {
		t.Errorf("Recommend.FuzzyThreshold = %v, want 0.75", cfg.Recommend.FuzzyThreshold)
	}
	if cfg.Recommend.Matcher != "levenshtein" {
		t.Errorf("Recommend.Matcher = %q, want levenshtein", cfg.Recommend.Matcher)
	}
	if cfg.Recommend.Cache.TTL != 90*time.Second {
		t.Errorf("Recommend.Cache.TTL = %v, want 90s", cfg.Recommend.Cache.TTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Defaults are still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Limits.MaxK != 100 {
		t.Errorf("Recommend.Limits.MaxK = %d, want 100 (default)", cfg.Recommend.Limits.MaxK)
	}
}

func TestLoadWithKoanfGenreAliases(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())

	t.Run("env replaces defaults", func(t *testing.T) {
		t.Setenv("RECOMMEND_GENRE_ALIASES", "flick=comedy, noir = crime")
		cfg, err := LoadWithKoanf()
		if err != nil {
			t.Fatalf("LoadWithKoanf() error = %v", err)
		}
		want := map[string]string{"flick": "comedy", "noir": "crime"}
		if !reflect.DeepEqual(cfg.Recommend.GenreAliases, want) {
			t.Errorf("GenreAliases = %v, want %v", cfg.Recommend.GenreAliases, want)
		}
	})

	t.Run("malformed pair", func(t *testing.T) {
		t.Setenv("RECOMMEND_GENRE_ALIASES", "flick")
		if _, err := LoadWithKoanf(); err == nil {
			t.Error("LoadWithKoanf() expected error for malformed alias")
		}
	})

	t.Run("defaults kept without env", func(t *testing.T) {
		cfg, err := LoadWithKoanf()
		if err != nil {
			t.Fatalf("LoadWithKoanf() error = %v", err)
		}
		if cfg.Recommend.GenreAliases["scifi"] != "sci-fi" {
			t.Errorf("GenreAliases[scifi] = %q, want sci-fi", cfg.Recommend.GenreAliases["scifi"])
		}
	})
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateEnv(t)

	path := writeConfigFile(t, `
catalog:
  path: /srv/movies.json
recommend:
  matcher: jarowinkler
  limits:
    default_k: 7
  similarity:
    stem: true
server:
  port: 8888
  host: "127.0.0.1"
logging:
  level: warn
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Catalog.Path != "/srv/movies.json" {
		t.Errorf("Catalog.Path = %q, want /srv/movies.json", cfg.Catalog.Path)
	}
	if cfg.Recommend.Matcher != "jarowinkler" {
		t.Errorf("Recommend.Matcher = %q, want jarowinkler", cfg.Recommend.Matcher)
	}
	if cfg.Recommend.Limits.DefaultK != 7 {
		t.Errorf("Recommend.Limits.DefaultK = %d, want 7", cfg.Recommend.Limits.DefaultK)
	}
	if !cfg.Recommend.Similarity.Stem {
		t.Error("Recommend.Similarity.Stem = false, want true")
	}
	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %s, want 127.0.0.1:8888", cfg.Addr())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}

	// Defaults are still applied for unset values
	if cfg.Recommend.Similarity.MaxFeatures != 20000 {
		t.Errorf("Recommend.Similarity.MaxFeatures = %d, want 20000 (default)", cfg.Recommend.Similarity.MaxFeatures)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	path := writeConfigFile(t, "server:\n  port: 8888\nlogging:\n  level: warn\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env overrides file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadFileMissing(t *testing.T) {
	isolateEnv(t)
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() expected error for missing explicit file")
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"invalid port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"unknown matcher", map[string]string{"RECOMMEND_MATCHER": "soundex"}, "matcher"},
		{"threshold out of range", map[string]string{"RECOMMEND_FUZZY_THRESHOLD": "1.5"}, "fuzzy_threshold"},
		{"empty catalog path", map[string]string{"MOVIESENSE_CATALOG_PATH": " "}, "CATALOG_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
