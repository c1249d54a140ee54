package booking

import "sparklewash/models"

// The lifecycle is a fixed linear path with a single terminal divert:
//
//	pending -> confirmed -> on-way -> in-progress -> completed
//	pending -> cancelled
//
// Every decision below is a function of the current status only.
var successors = map[models.BookingStatus]models.BookingStatus{
	models.StatusPending:    models.StatusConfirmed,
	models.StatusConfirmed:  models.StatusOnWay,
	models.StatusOnWay:      models.StatusInProgress,
	models.StatusInProgress: models.StatusCompleted,
}

// NextStatus returns the unique successor of the given status along the
// linear path. ok is false for completed and cancelled, which have none.
func NextStatus(current models.BookingStatus) (next models.BookingStatus, ok bool) {
	next, ok = successors[current]
	return next, ok
}

// CanCancel reports whether a booking may be cancelled. Cancellation is legal
// only while the booking is still pending.
func CanCancel(current models.BookingStatus) bool {
	return current == models.StatusPending
}

// CanTransition reports whether moving from one status straight to another is
// legal: the unique successor step, or the pending -> cancelled divert.
// Skips, backward moves and un-cancelling are all rejected.
func CanTransition(from, to models.BookingStatus) bool {
	if to == models.StatusCancelled {
		return CanCancel(from)
	}
	next, ok := successors[from]
	return ok && next == to
}
