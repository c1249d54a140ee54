package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"sparklewash/models"
	"sparklewash/utils"
)

// TypeReminderSend is the asynq task type for scheduled wash reminders.
const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues a reminder task when a booking is confirmed, to
// fire ahead of the appointment.
type ReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration

	// Now is injected for tests; nil means time.Now.
	Now func() time.Time
}

func (r *ReminderScheduler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// ScheduleWashReminder enqueues a reminder for the booking's appointment.
// Appointments already inside the lead window get no reminder.
func (r *ReminderScheduler) ScheduleWashReminder(ctx context.Context, b *models.Booking) error {
	appointment, err := time.ParseInLocation(
		utils.DateLayout+" "+utils.TimeLayout, b.Date+" "+b.Time, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable appointment for %s: %w", b.BookingID, err)
	}

	fireAt := appointment.Add(-r.Lead)
	if !fireAt.After(r.now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.BookingID,
		Phone:     b.Phone,
		Title:     "Your wash is coming up",
		Body: fmt.Sprintf("Booking %s: %s at %s, %s. See you there!",
			b.BookingID, b.Service, b.Time, b.Location),
		FireDate: fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = r.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}
