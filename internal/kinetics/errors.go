package kinetics

import "fmt"

// InvalidParameterError reports a numeric input outside its valid domain,
// such as a negative concentration or a non-positive tolerance width.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

// MissingParameterError reports a parameter that is required by the
// requested computation but was not supplied, e.g. an inhibitor
// concentration without an inhibition constant.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %s", e.Field)
}
