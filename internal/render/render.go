// Package render formats simulation results for output.
package render

import (
	"fmt"

	"github.com/pabonaldi/bioopti/internal/kinetics"
)

// Result is the output record for one simulation run.
type Result struct {
	Enzyme     string              `json:"enzyme,omitempty"`
	Organism   string              `json:"organism,omitempty"`
	Conditions kinetics.Conditions `json:"conditions"`
	Params     kinetics.Params     `json:"params"`
	Rate       float64             `json:"rate"`
	Unit       string              `json:"unit,omitempty"`
}

// Renderer formats a Result into bytes for output.
type Renderer interface {
	Render(res *Result) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "json" (default), "md".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md", format)
	}
}
