// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/tomtom215/moviesense/internal/fuzzy"
	"github.com/tomtom215/moviesense/internal/similarity"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Matcher names the fuzzy matcher used for genre and title resolution.
	// Default: "ratio".
	Matcher string `koanf:"matcher" json:"matcher"`

	// FuzzyThreshold is the minimum similarity a fuzzy candidate needs.
	// Default: 0.6.
	FuzzyThreshold float64 `koanf:"fuzzy_threshold" json:"fuzzy_threshold"`

	// GenreAliases maps alternative spellings to known genre tokens.
	// An alias only applies when its target occurs in the catalog.
	GenreAliases map[string]string `koanf:"genre_aliases" json:"genre_aliases"`

	// Similarity configures the TF-IDF vectorizer.
	Similarity similarity.Options `koanf:"similarity" json:"similarity"`

	// Limits contains operational limits.
	Limits LimitsConfig `koanf:"limits" json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `koanf:"cache" json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of similar titles returned when the caller
	// does not ask for a count.
	// Default: 10.
	DefaultK int `koanf:"default_k" json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 100.
	MaxK int `koanf:"max_k" json:"max_k"`

	// FeaturedK is the default size of the featured sample.
	// Default: 6.
	FeaturedK int `koanf:"featured_k" json:"featured_k"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether query results are memoized.
	// Default: true.
	Enabled bool `koanf:"enabled" json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `koanf:"ttl" json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 1024.
	MaxEntries int `koanf:"max_entries" json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Matcher:        fuzzy.NameRatio,
		FuzzyThreshold: fuzzy.DefaultThreshold,
		GenreAliases: map[string]string{
			"scifi":           "sci-fi",
			"sci fi":          "sci-fi",
			"science fiction": "sci-fi",
			"romcom":          "romance",
			"animated":        "animation",
			"cartoon":         "animation",
			"doc":             "documentary",
		},
		Similarity: similarity.DefaultOptions(),
		Limits: LimitsConfig{
			DefaultK:  10,
			MaxK:      100,
			FeaturedK: 6,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := fuzzy.New(c.Matcher); err != nil {
		return fmt.Errorf("matcher: %w", err)
	}
	if c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in (0, 1], got %f", c.FuzzyThreshold)
	}
	for alias, target := range c.GenreAliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("genre_aliases: empty alias or target in %q=%q", alias, target)
		}
	}
	if c.Similarity.MaxFeatures < 0 {
		return fmt.Errorf("similarity.max_features must be non-negative, got %d", c.Similarity.MaxFeatures)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.FeaturedK < 1 {
		return fmt.Errorf("limits.featured_k must be positive, got %d", c.Limits.FeaturedK)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.GenreAliases = maps.Clone(c.GenreAliases)
	return &out
}
