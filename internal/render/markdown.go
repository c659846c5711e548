package render

import (
	"bytes"
	"fmt"
	"text/template"
)

type markdownRenderer struct{}

// opt prints an optional float or "-" when absent.
func opt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

var mdTemplate = template.Must(template.New("result").Funcs(template.FuncMap{
	"opt": opt,
}).Parse(`# Reaction Rate
{{ if .Enzyme }}
**Enzyme:** {{ .Enzyme }}{{ if .Organism }} ({{ .Organism }}){{ end }}
{{ end }}
**Rate:** {{ printf "%.4f" .Rate }}{{ if .Unit }} {{ .Unit }}{{ end }}

## Conditions

| substrate_conc | pH | temp | inhibitor_conc |
|---|---|---|---|
| {{ .Conditions.SubstrateConc }} | {{ .Conditions.PH }} | {{ .Conditions.Temp }} | {{ opt .Conditions.InhibitorConc }} |

## Parameters

| vmax | km | optimal_pH | optimal_temp | pH_sigma | temp_sigma | ki |
|---|---|---|---|---|---|---|
| {{ .Params.Vmax }} | {{ .Params.Km }} | {{ .Params.OptimalPH }} | {{ .Params.OptimalTemp }} | {{ .Params.PHSigma }} | {{ .Params.TempSigma }} | {{ opt .Params.Ki }} |
`))

func (r *markdownRenderer) Render(res *Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, res); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
