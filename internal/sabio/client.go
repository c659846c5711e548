// Package sabio fetches enzyme kinetic parameters from the SABIO-RK
// reaction-kinetics database via its REST web service.
package sabio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pabonaldi/bioopti/internal/kinetics"
)

// sabioAPIURL is a var to allow test overrides via httptest.
var sabioAPIURL = "https://sabiork.h-its.org/sabioRestWebServices/kineticLaws"

// APIURL returns the current SABIO-RK endpoint URL.
func APIURL() string { return sabioAPIURL }

// SetAPIURL overrides the SABIO-RK endpoint URL. Intended for tests and
// for pointing at a local mirror.
func SetAPIURL(u string) { sabioAPIURL = u }

const defaultTimeout = 30 * time.Second

// Record holds the kinetic parameters recovered from one SABIO-RK query.
// A nil field means the database reported no value for it; when several
// observations exist they are averaged.
type Record struct {
	Vmax        *float64 `json:"vmax,omitempty"`
	Km          *float64 `json:"km,omitempty"`
	OptimalPH   *float64 `json:"optimal_pH,omitempty"`
	OptimalTemp *float64 `json:"optimal_temp,omitempty"`
}

// Missing returns the canonical names of fields the query did not provide.
func (r Record) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		val  *float64
	}{
		{"vmax", r.Vmax},
		{"km", r.Km},
		{"optimal_pH", r.OptimalPH},
		{"optimal_temp", r.OptimalTemp},
	} {
		if f.val == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Params converts a complete record into simulation parameters, filling in
// the caller's tolerance widths (SABIO-RK does not publish sigmas).
func (r Record) Params(phSigma, tempSigma float64) (kinetics.Params, error) {
	if missing := r.Missing(); len(missing) > 0 {
		return kinetics.Params{}, fmt.Errorf("incomplete SABIO-RK record: missing %v", missing)
	}
	return kinetics.Params{
		Vmax:        *r.Vmax,
		Km:          *r.Km,
		OptimalPH:   *r.OptimalPH,
		OptimalTemp: *r.OptimalTemp,
		PHSigma:     phSigma,
		TempSigma:   tempSigma,
	}, nil
}

// Client queries the SABIO-RK kineticLaws endpoint.
type Client struct {
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient builds a client with the given request timeout; a zero timeout
// falls back to 30s.
func NewClient(timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Extraction patterns for SABIO-RK's text export. Multiple kinetic-law
// entries produce multiple matches; values are averaged.
var (
	kmPattern      = regexp.MustCompile(`(?i)Km\s*=\s*([\d.]+)`)
	vmaxPattern    = regexp.MustCompile(`(?i)Vmax\s*=\s*([\d.]+)`)
	phOptPattern   = regexp.MustCompile(`(?i)pH[- ]?optimum\s*=\s*([\d.]+)`)
	tempOptPattern = regexp.MustCompile(`(?i)temperature[- ]?optimum\s*=\s*([\d.]+)`)
)

// Fetch queries SABIO-RK for the given enzyme, optionally restricted to an
// organism, using the advanced-search query syntax.
func (c *Client) Fetch(ctx context.Context, enzyme, organism string) (Record, error) {
	query := fmt.Sprintf("EnzymeName:%q", enzyme)
	if organism != "" {
		query += fmt.Sprintf(" AND Organism:%q", organism)
	}

	u, err := url.Parse(sabioAPIURL)
	if err != nil {
		return Record{}, fmt.Errorf("parsing SABIO-RK URL: %w", err)
	}
	q := u.Query()
	q.Set("format", "txt")
	q.Set("query", query)
	u.RawQuery = q.Encode()

	c.log.Debug().Str("enzyme", enzyme).Str("organism", organism).Msg("querying SABIO-RK")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Record{}, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("SABIO-RK request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodyBytes = 10 * 1024 * 1024 // 10 MiB
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Record{}, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Record{}, fmt.Errorf("SABIO-RK: HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	rec := parseRecord(string(body))
	c.log.Debug().Strs("missing", rec.Missing()).Msg("SABIO-RK response parsed")
	return rec, nil
}

// parseRecord extracts and averages kinetic values from the text export.
func parseRecord(text string) Record {
	return Record{
		Vmax:        mean(extract(vmaxPattern, text)),
		Km:          mean(extract(kmPattern, text)),
		OptimalPH:   mean(extract(phOptPattern, text)),
		OptimalTemp: mean(extract(tempOptPattern, text)),
	}
}

func extract(re *regexp.Regexp, text string) []float64 {
	var vals []float64
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

func mean(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	m := sum / float64(len(vals))
	return &m
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
