// Package cache persists SABIO-RK query results in SQLite so repeated
// fetches do not hit the remote service.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pabonaldi/bioopti/internal/sabio"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for fetched kinetic records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS fetched_params (
		key TEXT PRIMARY KEY,
		vmax REAL,
		km REAL,
		optimal_ph REAL,
		optimal_temp REAL,
		fetched_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("migrating cache schema: %w", err)
	}
	return nil
}

// Put stores or replaces the record for a composite enzyme key.
func (s *Store) Put(ctx context.Context, key string, rec sabio.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetched_params (key, vmax, km, optimal_ph, optimal_temp, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			vmax = excluded.vmax,
			km = excluded.km,
			optimal_ph = excluded.optimal_ph,
			optimal_temp = excluded.optimal_temp,
			fetched_at = excluded.fetched_at`,
		key, nullable(rec.Vmax), nullable(rec.Km), nullable(rec.OptimalPH), nullable(rec.OptimalTemp),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("caching record %q: %w", key, err)
	}
	return nil
}

// Get returns the cached record for a key if one exists and is younger
// than maxAge. The second return reports whether a usable entry was found.
func (s *Store) Get(ctx context.Context, key string, maxAge time.Duration) (sabio.Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT vmax, km, optimal_ph, optimal_temp, fetched_at
		FROM fetched_params WHERE key = ?`, key)

	var vmax, km, ph, temp sql.NullFloat64
	var fetchedAt string
	if err := row.Scan(&vmax, &km, &ph, &temp, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sabio.Record{}, false, nil
		}
		return sabio.Record{}, false, fmt.Errorf("reading cache entry %q: %w", key, err)
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return sabio.Record{}, false, fmt.Errorf("cache entry %q: bad timestamp %q: %w", key, fetchedAt, err)
	}
	if time.Since(at) > maxAge {
		return sabio.Record{}, false, nil
	}

	return sabio.Record{
		Vmax:        fromNull(vmax),
		Km:          fromNull(km),
		OptimalPH:   fromNull(ph),
		OptimalTemp: fromNull(temp),
	}, true, nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
