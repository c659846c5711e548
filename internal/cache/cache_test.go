package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pabonaldi/bioopti/internal/sabio"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sabio_cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func ptr(v float64) *float64 { return &v }

func TestPutGet_Roundtrip(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	rec := sabio.Record{
		Vmax:        ptr(90.0),
		Km:          ptr(0.4),
		OptimalPH:   ptr(7.0),
		OptimalTemp: nil, // partial records are cacheable too
	}
	if err := s.Put(ctx, "hexokinase (Saccharomyces cerevisiae)", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(ctx, "hexokinase (Saccharomyces cerevisiae)", time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: entry not found after Put")
	}
	if got.Vmax == nil || *got.Vmax != 90.0 {
		t.Errorf("Vmax = %v, want 90", got.Vmax)
	}
	if got.OptimalTemp != nil {
		t.Errorf("OptimalTemp = %v, want nil", *got.OptimalTemp)
	}
}

func TestGet_MissingKey(t *testing.T) {
	s := openTempStore(t)

	_, ok, err := s.Get(context.Background(), "pepsin (Sus scrofa)", time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported a hit for an absent key")
	}
}

func TestGet_Expired(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "urease (Canavalia ensiformis)", sabio.Record{Km: ptr(2.9)}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A negative max age expires everything.
	_, ok, err := s.Get(ctx, "urease (Canavalia ensiformis)", -time.Second)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get returned an expired entry")
	}
}

func TestPut_Replaces(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()
	key := "lactate dehydrogenase (Homo sapiens)"

	if err := s.Put(ctx, key, sabio.Record{Km: ptr(0.4)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, key, sabio.Record{Km: ptr(0.6)}); err != nil {
		t.Fatalf("Put (second): %v", err)
	}

	got, ok, err := s.Get(ctx, key, time.Hour)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Km == nil || *got.Km != 0.6 {
		t.Errorf("Km = %v, want 0.6 (latest write)", got.Km)
	}
}
