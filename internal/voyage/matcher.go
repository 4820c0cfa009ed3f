// Package voyage pairs hotel and flight bookings bought together into voyages
// and reconciles each pair into a single view.
package voyage

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// DefaultWindow is the maximum distance between the creation times of a
// hotel booking and a flight booking that still form one voyage.
const DefaultWindow = 10 * time.Minute

type Pair struct {
	Hotel  domain.HotelBooking
	Flight domain.FlightBooking
}

type MatchResult struct {
	Pairs           []Pair
	ConsumedHotels  map[string]struct{}
	ConsumedFlights map[string]struct{}
}

func (r MatchResult) HotelConsumed(id string) bool {
	_, ok := r.ConsumedHotels[id]
	return ok
}

func (r MatchResult) FlightConsumed(id string) bool {
	_, ok := r.ConsumedFlights[id]
	return ok
}

// Match walks hotels in order and pairs each with the first unconsumed flight
// booking, in flights order, of the same user created within window of it.
// Matching is greedy: there is no backtracking and the closest flight booking
// does not necessarily win. Both inputs are expected newest first.
//
// Flights are indexed by user up front. Within a user the original order is
// kept, so the pairs are the same as a plain nested scan would produce.
func Match(hotels []domain.HotelBooking, flights []domain.FlightBooking, window time.Duration) MatchResult {
	res := MatchResult{
		Pairs:           make([]Pair, 0),
		ConsumedHotels:  make(map[string]struct{}),
		ConsumedFlights: make(map[string]struct{}),
	}
	if len(hotels) == 0 || len(flights) == 0 {
		return res
	}

	byUser := make(map[string][]int)
	for i, f := range flights {
		byUser[f.UserID] = append(byUser[f.UserID], i)
	}
	used := make([]bool, len(flights))

	for _, h := range hotels {
		if res.HotelConsumed(h.ID) {
			continue
		}
		for _, i := range byUser[h.UserID] {
			if used[i] {
				continue
			}
			f := flights[i]
			if !withinWindow(h.CreatedAt, f.CreatedAt, window) {
				continue
			}
			used[i] = true
			res.ConsumedHotels[h.ID] = struct{}{}
			res.ConsumedFlights[f.ID] = struct{}{}
			res.Pairs = append(res.Pairs, Pair{Hotel: h, Flight: f})
			break
		}
	}
	return res
}

func withinWindow(a, b time.Time, window time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= window
}
