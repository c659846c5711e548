package kinetics

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all Validate calls; validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as they appear in the dataset format, not as
	// Go identifiers, so errors point at the field the caller wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the parameter invariants: vmax, km, pH_sigma and
// temp_sigma must be positive, and ki must be positive when present.
func (p Params) Validate() error {
	return translate(validate.Struct(p))
}

// Validate checks the condition invariants: substrate and inhibitor
// concentrations must be non-negative.
func (c Conditions) Validate() error {
	return translate(validate.Struct(c))
}

// translate converts the first validator failure into an
// InvalidParameterError carrying the offending field and value.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]

	var reason string
	switch fe.Tag() {
	case "gt":
		reason = "must be > " + fe.Param()
	case "gte":
		reason = "must be >= " + fe.Param()
	default:
		reason = "failed " + fe.Tag() + " constraint"
	}

	return &InvalidParameterError{
		Field:  fe.Field(),
		Value:  fieldValue(fe.Value()),
		Reason: reason,
	}
}

func fieldValue(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case *float64:
		if x != nil {
			return *x
		}
	}
	return 0
}
