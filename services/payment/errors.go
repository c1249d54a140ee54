package payment

import "fmt"

// ValidationError reports client input that fails a domain check before any
// persistence is attempted. Handlers map it to a 400, never a 500.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
