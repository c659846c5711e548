package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pabonaldi/bioopti/internal/cache"
	"github.com/pabonaldi/bioopti/internal/config"
	"github.com/pabonaldi/bioopti/internal/dataset"
	"github.com/pabonaldi/bioopti/internal/sabio"
)

// newFetchCmd builds the SABIO-RK lookup command. Results are cached in a
// local SQLite database so repeated queries stay off the network.
func newFetchCmd() *cobra.Command {
	var (
		common    commonFlags
		organism  string
		cachePath string
		noCache   bool
		maxAge    time.Duration
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch <enzyme>",
		Short: "Fetch kinetic parameters from the SABIO-RK database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args[0], organism, fetchOptions{
				common:     common,
				cachePath:  cachePath,
				noCache:    noCache,
				maxAge:     maxAge,
				maxAgeSet:  cmd.Flags().Changed("max-age"),
				timeout:    timeout,
				timeoutSet: cmd.Flags().Changed("timeout"),
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&organism, "organism", "", "Organism of origin, e.g. \"Homo sapiens\"")
	f.StringVar(&cachePath, "cache", "", "Fetch-cache path (SQLite)")
	f.BoolVar(&noCache, "no-cache", false, "Bypass the fetch cache entirely")
	f.DurationVar(&maxAge, "max-age", 7*24*time.Hour, "Maximum age of a usable cache entry")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "SABIO-RK request timeout")
	addCommonFlags(cmd, &common)

	return cmd
}

type fetchOptions struct {
	common     commonFlags
	cachePath  string
	noCache    bool
	maxAge     time.Duration
	maxAgeSet  bool
	timeout    time.Duration
	timeoutSet bool
}

func runFetch(ctx context.Context, enzyme, organism string, opts fetchOptions) error {
	log := newLogger(opts.common.verbose)

	cfg, err := loadConfig(opts.common.configPath)
	if err != nil {
		return err
	}
	if cfg.Sabio.BaseURL != nil {
		sabio.SetAPIURL(*cfg.Sabio.BaseURL)
	}
	if cfg.Sabio.TimeoutSeconds != nil && !opts.timeoutSet {
		opts.timeout = time.Duration(*cfg.Sabio.TimeoutSeconds) * time.Second
	}

	key := dataset.Key(enzyme, organism)

	var store *cache.Store
	if !opts.noCache {
		path := opts.cachePath
		if path == "" {
			if cfg.Cache.Path != nil {
				path = *cfg.Cache.Path
			} else {
				path = config.DefaultCachePath()
			}
		}
		store, err = cache.Open(path)
		if err != nil {
			return codeError(3, "opening fetch cache: %s", err)
		}
		defer store.Close() //nolint:errcheck

		if cfg.Cache.MaxAgeHours != nil && !opts.maxAgeSet {
			opts.maxAge = time.Duration(*cfg.Cache.MaxAgeHours) * time.Hour
		}
		rec, ok, err := store.Get(ctx, key, opts.maxAge)
		if err != nil {
			return codeError(5, "reading fetch cache: %s", err)
		}
		if ok {
			log.Debug().Str("key", key).Msg("cache hit")
			return emitRecord(rec, key, opts.common, log)
		}
	}

	client := sabio.NewClient(opts.timeout, log)
	rec, err := client.Fetch(ctx, enzyme, organism)
	if err != nil {
		return codeError(5, "%s", err)
	}

	if store != nil {
		if err := store.Put(ctx, key, rec); err != nil {
			// A cache write failure must not discard a successful fetch.
			log.Warn().Err(err).Msg("caching fetched record failed")
		}
	}
	return emitRecord(rec, key, opts.common, log)
}

func emitRecord(rec sabio.Record, key string, common commonFlags, log zerolog.Logger) error {
	if missing := rec.Missing(); len(missing) > 0 {
		log.Warn().Str("key", key).Strs("missing", missing).
			Msg("SABIO-RK returned an incomplete record; fill the gaps from literature before simulating")
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return codeError(5, "encoding record: %s", err)
	}
	return writeOutput(out, common.out)
}
