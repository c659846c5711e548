package render

import "encoding/json"

type jsonRenderer struct{}

func (r *jsonRenderer) Render(res *Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}
