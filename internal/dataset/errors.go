package dataset

import "fmt"

// FormatError reports a malformed dataset record: a required field that is
// missing, has the wrong type, or carries an out-of-domain value.
type FormatError struct {
	Key    string
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dataset record %q: field %s: %s", e.Key, e.Field, e.Reason)
}

// NotFoundError reports a composite key with no dataset entry.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enzyme %q not found in dataset", e.Key)
}
