package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sparklewash/models"
)

func TestNextStatusWalksTheLinearPath(t *testing.T) {
	want := []models.BookingStatus{
		models.StatusConfirmed,
		models.StatusOnWay,
		models.StatusInProgress,
		models.StatusCompleted,
	}

	current := models.StatusPending
	for _, expected := range want {
		next, ok := NextStatus(current)
		assert.True(t, ok, "expected a successor from %q", current)
		assert.Equal(t, expected, next)
		current = next
	}

	// completed has no successor.
	_, ok := NextStatus(current)
	assert.False(t, ok)
}

func TestNextStatusTerminalStates(t *testing.T) {
	for _, status := range []models.BookingStatus{models.StatusCompleted, models.StatusCancelled} {
		_, ok := NextStatus(status)
		assert.False(t, ok, "%q must have no successor", status)
	}
}

func TestCanCancelOnlyFromPending(t *testing.T) {
	assert.True(t, CanCancel(models.StatusPending))

	for _, status := range []models.BookingStatus{
		models.StatusConfirmed,
		models.StatusOnWay,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		assert.False(t, CanCancel(status), "cancel must be illegal from %q", status)
	}
}

func TestCanTransitionRejectsSkipsAndBackwardMoves(t *testing.T) {
	// Skipping ahead.
	assert.False(t, CanTransition(models.StatusPending, models.StatusCompleted))
	assert.False(t, CanTransition(models.StatusConfirmed, models.StatusInProgress))

	// Backward.
	assert.False(t, CanTransition(models.StatusConfirmed, models.StatusPending))
	assert.False(t, CanTransition(models.StatusCompleted, models.StatusInProgress))

	// Un-cancelling.
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusPending))
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusConfirmed))

	// Cancelling late.
	assert.False(t, CanTransition(models.StatusInProgress, models.StatusCancelled))

	// The legal steps.
	assert.True(t, CanTransition(models.StatusPending, models.StatusConfirmed))
	assert.True(t, CanTransition(models.StatusConfirmed, models.StatusOnWay))
	assert.True(t, CanTransition(models.StatusOnWay, models.StatusInProgress))
	assert.True(t, CanTransition(models.StatusInProgress, models.StatusCompleted))
	assert.True(t, CanTransition(models.StatusPending, models.StatusCancelled))
}
