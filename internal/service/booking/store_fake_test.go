package booking

import (
	"context"
	"maps"
	"sort"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// fakeStore keeps every table in memory. WithTx snapshots the maps and
// restores them when fn fails, which is enough to observe atomicity.
type fakeStore struct {
	rooms          map[string]domain.Room
	flights        map[string]domain.Flight
	hotelBookings  map[string]domain.HotelBooking
	flightBookings map[string]domain.FlightBooking

	listErr         error
	decrementErr    error
	createFlightErr error
	updateFlightErr error
	deleteFlightErr error
	txCalls         int

	// afterHotelList runs once, after the hotel rows have been read.
	afterHotelList func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:          map[string]domain.Room{},
		flights:        map[string]domain.Flight{},
		hotelBookings:  map[string]domain.HotelBooking{},
		flightBookings: map[string]domain.FlightBooking{},
	}
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txCalls++
	flights := maps.Clone(s.flights)
	hotelBookings := maps.Clone(s.hotelBookings)
	flightBookings := maps.Clone(s.flightBookings)
	if err := fn(ctx); err != nil {
		s.flights = flights
		s.hotelBookings = hotelBookings
		s.flightBookings = flightBookings
		return err
	}
	return nil
}

func (s *fakeStore) ListFlights(context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) GetFlight(_ context.Context, id string) (*domain.Flight, error) {
	f, ok := s.flights[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	return &f, nil
}

func (s *fakeStore) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	return &r, nil
}

func (s *fakeStore) DecrementAvailableSeats(_ context.Context, flightID string) error {
	if s.decrementErr != nil {
		return s.decrementErr
	}
	f, ok := s.flights[flightID]
	if !ok || f.AvailableSeats <= 0 {
		return domain.ErrNoSeatsAvailable
	}
	f.AvailableSeats--
	s.flights[flightID] = f
	return nil
}

type fakeHotelRepo struct{ *fakeStore }

func (r fakeHotelRepo) List(context.Context) ([]domain.HotelBooking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.HotelBooking, 0, len(r.hotelBookings))
	for _, b := range r.hotelBookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if hook := r.afterHotelList; hook != nil {
		r.afterHotelList = nil
		hook()
	}
	return out, nil
}

func (r fakeHotelRepo) Create(_ context.Context, b *domain.HotelBooking) error {
	if _, ok := r.rooms[b.RoomID]; !ok {
		return domain.ErrResourceNotFound
	}
	r.hotelBookings[b.ID] = *b
	return nil
}

func (r fakeHotelRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.hotelBookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	r.hotelBookings[id] = b
	return nil
}

func (r fakeHotelRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.hotelBookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.hotelBookings, id)
	return nil
}

type fakeFlightRepo struct{ *fakeStore }

func (r fakeFlightRepo) List(context.Context) ([]domain.FlightBooking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.FlightBooking, 0, len(r.flightBookings))
	for _, b := range r.flightBookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeFlightRepo) Create(_ context.Context, b *domain.FlightBooking) error {
	if r.createFlightErr != nil {
		return r.createFlightErr
	}
	r.flightBookings[b.ID] = *b
	return nil
}

func (r fakeFlightRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if r.updateFlightErr != nil {
		return r.updateFlightErr
	}
	b, ok := r.flightBookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	r.flightBookings[id] = b
	return nil
}

func (r fakeFlightRepo) Delete(_ context.Context, id string) error {
	if r.deleteFlightErr != nil {
		return r.deleteFlightErr
	}
	if _, ok := r.flightBookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.flightBookings, id)
	return nil
}
