// Package dataset resolves enzyme identity to kinetic parameters. A store
// is loaded once from a keyed JSON collection and is read-only afterwards,
// so concurrent lookups need no synchronization.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pabonaldi/bioopti/internal/kinetics"
)

// Key builds the composite dataset key "<enzyme name> (<organism>)".
func Key(name, organism string) string {
	return name + " (" + organism + ")"
}

// Store is an immutable mapping from composite key to kinetic parameters.
type Store struct {
	path    string
	records map[string]kinetics.Params
}

// Load reads a JSON dataset from disk and parses it into a Store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Parse decodes a keyed JSON collection of enzyme records. Each record must
// carry vmax, km, optimal_pH, optimal_temp, pH_sigma and temp_sigma; ki is
// optional. Unit-tagged field names (km_mM, vmax_umol_per_min, ...) are
// accepted and normalized. A malformed record yields a FormatError.
func Parse(r io.Reader) (*Store, error) {
	var raw map[string]map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	records := make(map[string]kinetics.Params, len(raw))
	for key, fields := range raw {
		p, err := decodeRecord(key, normalizeFields(fields))
		if err != nil {
			return nil, err
		}
		records[key] = p
	}
	return &Store{records: records}, nil
}

// requiredFields lists the record fields every enzyme entry must carry.
var requiredFields = []string{"vmax", "km", "optimal_pH", "optimal_temp", "pH_sigma", "temp_sigma"}

func decodeRecord(key string, fields map[string]json.RawMessage) (kinetics.Params, error) {
	var p kinetics.Params

	dst := map[string]*float64{
		"vmax":         &p.Vmax,
		"km":           &p.Km,
		"optimal_pH":   &p.OptimalPH,
		"optimal_temp": &p.OptimalTemp,
		"pH_sigma":     &p.PHSigma,
		"temp_sigma":   &p.TempSigma,
	}
	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok {
			return kinetics.Params{}, &FormatError{Key: key, Field: name, Reason: "required field missing"}
		}
		if err := json.Unmarshal(raw, dst[name]); err != nil {
			return kinetics.Params{}, &FormatError{Key: key, Field: name, Reason: "not a number"}
		}
	}

	if raw, ok := fields["ki"]; ok {
		var ki float64
		if err := json.Unmarshal(raw, &ki); err != nil {
			return kinetics.Params{}, &FormatError{Key: key, Field: "ki", Reason: "not a number"}
		}
		p.Ki = &ki
	}

	if err := p.Validate(); err != nil {
		var ierr *kinetics.InvalidParameterError
		if errors.As(err, &ierr) {
			return kinetics.Params{}, &FormatError{Key: key, Field: ierr.Field, Reason: ierr.Reason}
		}
		return kinetics.Params{}, fmt.Errorf("record %q: %w", key, err)
	}
	return p, nil
}

// Get resolves an enzyme name and organism to its parameter record.
// Lookup is exact-string on the composite key; no case folding or
// whitespace normalization is performed.
func (s *Store) Get(name, organism string) (kinetics.Params, error) {
	key := Key(name, organism)
	p, ok := s.records[key]
	if !ok {
		return kinetics.Params{}, &NotFoundError{Key: key}
	}
	return p, nil
}

// ResolveAndSimulate resolves an enzyme and simulates its reaction rate
// under the given conditions, surfacing either step's error unchanged.
func (s *Store) ResolveAndSimulate(name, organism string, cond kinetics.Conditions) (float64, error) {
	p, err := s.Get(name, organism)
	if err != nil {
		return 0, err
	}
	return kinetics.Simulate(p, cond)
}

// Len reports the number of loaded records.
func (s *Store) Len() int { return len(s.records) }

// Keys returns all composite keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the file the store was loaded from, if any.
func (s *Store) Path() string { return s.path }
