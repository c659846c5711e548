package dataset

import "encoding/json"

// fieldAliases maps unit-tagged field names, as found in hand-authored
// datasets, to their canonical form.
var fieldAliases = map[string]string{
	"km_mM":             "km",
	"vmax_umol_per_min": "vmax",
	"optimal_temp_C":    "optimal_temp",
	"temp_sigma_C":      "temp_sigma",
	"ki_mM":             "ki",
}

// normalizeFields rewrites unit-tagged field names to canonical ones.
// A canonical field already present in the record wins over its alias;
// fields that are neither canonical nor aliased pass through untouched.
func normalizeFields(fields map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))
	for name, raw := range fields {
		canonical, ok := fieldAliases[name]
		if !ok {
			out[name] = raw
			continue
		}
		if _, exists := fields[canonical]; !exists {
			out[canonical] = raw
		}
	}
	return out
}
