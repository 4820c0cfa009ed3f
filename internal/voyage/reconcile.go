package voyage

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

func statusPriority(s domain.BookingStatus) int {
	switch s {
	case domain.BookingStatusCancelled:
		return 0
	case domain.BookingStatusPending:
		return 1
	case domain.BookingStatusConfirmed:
		return 2
	case domain.BookingStatusCompleted:
		return 3
	default:
		// Unknown statuses rank with CANCELLED.
		return 0
	}
}

// ReconcileStatus returns the higher-priority status of the two. Ties go to a.
func ReconcileStatus(a, b domain.BookingStatus) domain.BookingStatus {
	if statusPriority(b) > statusPriority(a) {
		return b
	}
	return a
}

func ReconcileCreatedAt(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func ReconcilePrice(a, b int64) int64 {
	return a + b
}

// New merges a matched pair into one voyage view.
func New(p Pair) domain.Voyage {
	return domain.Voyage{
		ID:         EncodeID(p.Hotel.ID, p.Flight.ID),
		UserID:     p.Hotel.UserID,
		Status:     ReconcileStatus(p.Hotel.Status, p.Flight.Status),
		CreatedAt:  ReconcileCreatedAt(p.Hotel.CreatedAt, p.Flight.CreatedAt),
		PriceCents: ReconcilePrice(p.Hotel.TotalPriceCents, p.Flight.PriceCents),
		Hotel:      p.Hotel,
		Flight:     p.Flight,
	}
}
