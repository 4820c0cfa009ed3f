package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender turns booking events into customer notifications. Delivery is a
// structured log line until a mail provider is wired in.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.BookingID == "" {
		return nil
	}
	s.log.Info("send booking notification",
		zap.String("user_id", event.UserID),
		zap.String("booking_id", event.BookingID),
		zap.String("event", event.Type),
		zap.String("subject", Subject(event)),
	)
	return nil
}

func Subject(event kafka.BookingEvent) string {
	what := "booking"
	if strings.EqualFold(event.BookingType, "VOYAGE") {
		what = "trip"
	}
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Your %s %s is reserved", what, event.BookingID)
	case kafka.EventBookingConfirmed:
		return fmt.Sprintf("Your %s %s is confirmed", what, event.BookingID)
	case kafka.EventBookingCancelled:
		return fmt.Sprintf("Your %s %s was cancelled", what, event.BookingID)
	case kafka.EventBookingDeleted:
		return fmt.Sprintf("Your %s %s was removed", what, event.BookingID)
	default:
		return fmt.Sprintf("Update on your %s %s", what, event.BookingID)
	}
}
