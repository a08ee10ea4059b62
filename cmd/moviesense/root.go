// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moviesense/internal/config"
	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/recommend"
)

// options holds the persistent flags shared by every command.
type options struct {
	catalog    string
	configFile string
	jsonOutput bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "moviesense",
		Short: "MovieSense - content-based movie recommendations",
		Long: `MovieSense answers movie queries from a catalog file.

A query is resolved, in order, as:
  • a release year ("1995")
  • a genre, including aliases and near misses ("scifi", "comdy")
  • a title, returning the most similar other movies ("inception")`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.catalog, "catalog", "", "Catalog file (.csv, .tsv, .parquet, .json); overrides MOVIESENSE_CATALOG_PATH")
	flags.StringVar(&opts.configFile, "config", "", "Config file (default: config.yaml search path)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of a table")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRecommendCmd(opts),
		newListCmd(opts),
		newFeaturedCmd(opts),
		newGenresCmd(opts),
		newExportCmd(opts),
		newStatsCmd(opts),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "MovieSense %s (%s) built %s\n", version, commit, buildTime)
		},
	}
}

func newRecommendCmd(opts *options) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Recommend movies for a year, genre or title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			resp := eng.Query(strings.Join(args, " "), k)
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "Number of similar titles for title queries (0 = configured default)")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog ranked by rating, one movie per title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			results := eng.ListAll()
			if limit > 0 && limit < len(results) {
				results = results[:limit]
			}
			return opts.writeResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum movies to print (0 = all)")
	return cmd
}

func newFeaturedCmd(opts *options) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Print the first distinct titles in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			return opts.writeResults(cmd.OutOrStdout(), eng.Featured(n))
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 0, "Number of movies (0 = configured default)")
	return cmd
}

func newGenresCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List known genre tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			genres := eng.Genres()
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), genres)
			}
			for _, g := range genres {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		output string
		query  string
		k      int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog, or a query's results, as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}

			var results []recommend.Result
			if query != "" {
				results = eng.Recommend(query, k)
			} else {
				results = eng.ListAll()
			}

			if output == "" || output == "-" {
				return recommend.WriteCSV(cmd.OutOrStdout(), results)
			}
			if err := writeCSVFile(output, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d movies to %s\n", len(results), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&query, "query", "", "Export the results of this query instead of the catalog")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "Number of similar titles for title queries")
	return cmd
}

// writeCSVFile exports results to path. A failed close is an export failure.
func writeCSVFile(path string, results []recommend.Result) error {
	f, err := os.Create(path) //nolint:gosec // path chosen by the operator
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := recommend.WriteCSV(f, results); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog and index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), eng.Stats())
			}
			return writeStats(cmd.OutOrStdout(), eng.Stats())
		},
	}
}

// loadConfig reads the config file and environment, then applies flags.
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.LoadFile(o.configFile)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return nil, err
	}
	if o.catalog != "" {
		cfg.Catalog.Path = o.catalog
	}
	return cfg, nil
}

func (o *options) engine(ctx context.Context) (*recommend.Engine, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = o.logLevel
	logCfg.Format = "console"
	logging.Init(logCfg)

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return recommend.LoadEngine(ctx, cfg.Catalog.Path, &cfg.Recommend, logging.Logger())
}

func (o *options) writeResults(w io.Writer, results []recommend.Result) error {
	if o.jsonOutput {
		return writeJSON(w, results)
	}
	return writeTable(w, results)
}
