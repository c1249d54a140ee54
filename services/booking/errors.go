package booking

import (
	"fmt"

	"sparklewash/models"
)

// InvalidTransitionError reports an attempted illegal status change. No
// mutation is performed when it is returned.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("invalidTransition: no successor from %q", e.From)
	}
	return fmt.Sprintf("invalidTransition: %q -> %q is not permitted", e.From, e.To)
}

// PersistenceError wraps a failure from the write collaborator. The caller
// decides whether to retry; the service never retries implicitly.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistenceFailure: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
