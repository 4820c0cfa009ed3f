package email

import (
	"context"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "Your trip voyage-H1-F1 is confirmed",
		Subject(kafka.BookingEvent{Type: kafka.EventBookingConfirmed, BookingID: "voyage-H1-F1", BookingType: "VOYAGE"}))
	assert.Equal(t, "Your booking H1 was cancelled",
		Subject(kafka.BookingEvent{Type: kafka.EventBookingCancelled, BookingID: "H1", BookingType: "HOTEL"}))
	assert.Equal(t, "Update on your booking F1",
		Subject(kafka.BookingEvent{Type: "something_else", BookingID: "F1", BookingType: "FLIGHT"}))
}

func TestSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewSender(zap.New(core))

	err := s.Send(context.Background(), kafka.BookingEvent{Type: kafka.EventBookingCreated, BookingID: "voyage-H1-F1", BookingType: "VOYAGE", UserID: "U1"})
	assert.NoError(t, err)
	assert.NoError(t, s.Send(context.Background(), kafka.BookingEvent{}))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "U1", entries[0].ContextMap()["user_id"])
	}
}
