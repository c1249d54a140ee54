// Package notification delivers FCM pushes to customers. Delivery is best
// effort: a customer without a registered device token, or a deployment
// without Firebase credentials, is a silent skip rather than an error.
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	customerRepo "sparklewash/database/repository/customer"
	"sparklewash/models"
	"sparklewash/utils"
)

// NotificationService defines methods for sending customer pushes.
type NotificationService interface {
	SendCustomerPush(ctx context.Context, phone, title, body string, data map[string]string) error
	NotifyBookingStatus(ctx context.Context, booking *models.Booking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Customers customerRepo.CustomerRepository
	Logger    *zap.Logger
}

// SendCustomerPush looks up the customer's FCM token and sends a push.
func (s *DefaultNotificationService) SendCustomerPush(ctx context.Context, phone, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	customer, err := s.Customers.GetByPhone(ctx, phone)
	if err != nil || customer.FCMToken == "" {
		return nil // no push target
	}

	msg := &messaging.Message{
		Token: customer.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendCustomerPush: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyBookingStatus pushes a status-change update for the given booking.
func (s *DefaultNotificationService) NotifyBookingStatus(ctx context.Context, booking *models.Booking) error {
	title, body := statusMessage(booking)
	if title == "" {
		return nil
	}

	err := s.SendCustomerPush(ctx, booking.Phone, title, body, map[string]string{
		"type":      "booking_status",
		"bookingId": booking.BookingID,
		"status":    string(booking.Status),
	})
	if err != nil && s.Logger != nil {
		s.Logger.Warn("booking status push failed",
			zap.String("bookingId", booking.BookingID), zap.Error(err))
	}
	return err
}

func statusMessage(b *models.Booking) (title, body string) {
	switch b.Status {
	case models.StatusConfirmed:
		return "Booking confirmed",
			fmt.Sprintf("Your wash %s is confirmed for %s at %s.", b.BookingID, b.Date, b.Time)
	case models.StatusOnWay:
		return "Crew on the way",
			fmt.Sprintf("Our crew is heading to %s for booking %s.", b.Location, b.BookingID)
	case models.StatusInProgress:
		return "Wash in progress",
			fmt.Sprintf("We have started on %s (%s).", b.PlateNumber, b.BookingID)
	case models.StatusCompleted:
		return "Wash completed",
			fmt.Sprintf("Booking %s is done. Thank you for choosing us!", b.BookingID)
	case models.StatusCancelled:
		return "Booking cancelled",
			fmt.Sprintf("Booking %s has been cancelled.", b.BookingID)
	}
	return "", ""
}
