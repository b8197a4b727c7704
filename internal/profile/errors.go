package profile

import "fmt"

// ValidationError reports a malformed raw topic or sub-topic record.
// Record holds the offending value as it was supplied.
type ValidationError struct {
	Record any
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid profile record %v: %s", e.Record, e.Reason)
	}
	return fmt.Sprintf("invalid profile record %v: %s %s", e.Record, e.Field, e.Reason)
}
