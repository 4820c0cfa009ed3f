package voyage

import (
	"sort"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// Standalone lists every booking as its own entry, newest first.
func Standalone(hotels []domain.HotelBooking, flights []domain.FlightBooking) []domain.CombinedBooking {
	out := make([]domain.CombinedBooking, 0, len(hotels)+len(flights))
	for _, h := range hotels {
		out = append(out, domain.HotelEntry(h))
	}
	for _, f := range flights {
		out = append(out, domain.FlightEntry(f))
	}
	sortNewestFirst(out)
	return out
}

// Combine detects voyages and lists them first, followed by the bookings that
// were not paired. Each group is sorted newest first.
func Combine(hotels []domain.HotelBooking, flights []domain.FlightBooking, window time.Duration) []domain.CombinedBooking {
	res := Match(hotels, flights, window)

	voyages := make([]domain.CombinedBooking, 0, len(res.Pairs))
	for _, p := range res.Pairs {
		voyages = append(voyages, domain.VoyageEntry(New(p)))
	}
	sortNewestFirst(voyages)

	rest := make([]domain.CombinedBooking, 0, len(hotels)+len(flights)-2*len(res.Pairs))
	for _, h := range hotels {
		if !res.HotelConsumed(h.ID) {
			rest = append(rest, domain.HotelEntry(h))
		}
	}
	for _, f := range flights {
		if !res.FlightConsumed(f.ID) {
			rest = append(rest, domain.FlightEntry(f))
		}
	}
	sortNewestFirst(rest)

	return append(voyages, rest...)
}

func sortNewestFirst(entries []domain.CombinedBooking) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt().After(entries[j].CreatedAt())
	})
}
