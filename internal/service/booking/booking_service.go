package booking

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/clock"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/validation"
	"github.com/Domenick1991/travelbooking/internal/voyage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	GetCombinedBookings(ctx context.Context) ListResult
	GetCombinedBookingsWithVoyages(ctx context.Context) ListResult
	CreateVoyageBooking(ctx context.Context, input CreateVoyageInput) Result
	CancelBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result
	ConfirmBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result
	DeleteBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result
}

type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Cache interface {
	// GetBookings returns the generation the lookup ran under; SetBookings
	// must be given that generation so a listing read before a mutation is
	// never served after it.
	GetBookings(ctx context.Context, listing cache.Listing) ([]domain.CombinedBooking, int64, error)
	SetBookings(ctx context.Context, listing cache.Listing, gen int64, bookings []domain.CombinedBooking) error
	InvalidateBookings(ctx context.Context) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value any, maxRetries int) error
}

const (
	defaultPublishRetries = 3
	defaultPublishTimeout = 2 * time.Second
)

type CreateVoyageInput struct {
	UserID     string    `json:"user_id" validate:"required"`
	HotelID    string    `json:"hotel_id" validate:"required"`
	RoomID     string    `json:"room_id" validate:"required"`
	FlightID   string    `json:"flight_id" validate:"required"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	SeatNumber string    `json:"seat_number,omitempty" validate:"omitempty,seat"`
}

type BookingService struct {
	tx       TxRunner
	hotels   repository.HotelBookingRepository
	flights  repository.FlightBookingRepository
	catalog  repository.CatalogRepository
	cache    Cache
	producer Producer

	eventsTopic        string
	notificationsTopic string
	publishRetries     int
	publishTimeout     time.Duration

	window    time.Duration
	clock     clock.Clock
	validator *validation.Validator
	pickSeat  func() string
	newID     func() string
	log       *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithCache(c Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = c
	}
}

func WithProducer(p Producer, eventsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishPolicy bounds event publishing: each topic gets up to retries
// attempts and all of them share timeout.
func WithPublishPolicy(retries int, timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if retries > 0 {
			s.publishRetries = retries
		}
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func WithVoyageWindow(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if d > 0 {
			s.window = d
		}
	}
}

func WithClock(c clock.Clock) BookingServiceOption {
	return func(s *BookingService) {
		s.clock = c
	}
}

func WithLogger(log *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(
	tx TxRunner,
	hotels repository.HotelBookingRepository,
	flights repository.FlightBookingRepository,
	catalog repository.CatalogRepository,
	opts ...BookingServiceOption,
) *BookingService {
	s := &BookingService{
		tx:        tx,
		hotels:    hotels,
		flights:   flights,
		catalog:   catalog,
		window:    voyage.DefaultWindow,
		clock:     clock.NewSystem(),
		validator: validation.New(),
		pickSeat:  randomSeat,
		newID:     newID,
		log:       zap.NewNop(),

		publishRetries: defaultPublishRetries,
		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCombinedBookings lists every hotel and flight booking on its own,
// newest first.
func (s *BookingService) GetCombinedBookings(ctx context.Context) ListResult {
	return s.list(ctx, cache.ListingStandalone, func(h []domain.HotelBooking, f []domain.FlightBooking) []domain.CombinedBooking {
		return voyage.Standalone(h, f)
	})
}

// GetCombinedBookingsWithVoyages lists detected voyages first and then the
// standalone bookings, each group newest first.
func (s *BookingService) GetCombinedBookingsWithVoyages(ctx context.Context) ListResult {
	return s.list(ctx, cache.ListingVoyages, func(h []domain.HotelBooking, f []domain.FlightBooking) []domain.CombinedBooking {
		return voyage.Combine(h, f, s.window)
	})
}

func (s *BookingService) list(ctx context.Context, listing cache.Listing, build func([]domain.HotelBooking, []domain.FlightBooking) []domain.CombinedBooking) ListResult {
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		cached, g, err := s.cache.GetBookings(ctx, listing)
		switch {
		case err != nil:
			s.log.Warn("read bookings cache", zap.String("listing", string(listing)), zap.Error(err))
		case cached != nil:
			return ListResult{Success: true, Data: cached}
		default:
			gen, cacheable = g, true
		}
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return s.listFailure(err)
	}
	flights, err := s.flights.List(ctx)
	if err != nil {
		return s.listFailure(err)
	}

	data := build(hotels, flights)
	if cacheable {
		if err := s.cache.SetBookings(ctx, listing, gen, data); err != nil {
			s.log.Warn("write bookings cache", zap.String("listing", string(listing)), zap.Error(err))
		}
	}
	return ListResult{Success: true, Data: data}
}

func (s *BookingService) listFailure(err error) ListResult {
	s.log.Error("list bookings", zap.Error(err))
	return ListResult{Success: false, Message: "Failed to fetch bookings", Code: CodeStoreFailure, Data: []domain.CombinedBooking{}}
}

// CreateVoyageBooking books a room and a flight seat for one user in a
// single transaction: both bookings are inserted PENDING and the flight
// loses one available seat, or nothing changes.
func (s *BookingService) CreateVoyageBooking(ctx context.Context, input CreateVoyageInput) Result {
	voyageID, err := s.createVoyage(ctx, input)
	if err != nil {
		return s.failure(err, "create voyage booking", zap.String("user_id", input.UserID), zap.String("flight_id", input.FlightID))
	}

	s.afterMutation(ctx, kafka.BookingEvent{
		Type:        kafka.EventBookingCreated,
		BookingID:   voyageID,
		BookingType: string(domain.BookingTypeVoyage),
		UserID:      input.UserID,
		Status:      string(domain.BookingStatusPending),
	})
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn("invalidate flights cache", zap.Error(err))
		}
	}

	res := ok("Voyage booked successfully")
	res.ID = voyageID
	return res
}

func (s *BookingService) createVoyage(ctx context.Context, in CreateVoyageInput) (string, error) {
	if in.UserID == "" {
		return "", domain.ErrUserRequired
	}
	if err := s.validator.Struct(in); err != nil {
		return "", err
	}

	room, err := s.catalog.GetRoom(ctx, in.RoomID)
	if err != nil {
		return "", err
	}
	if room.HotelID != in.HotelID {
		return "", domain.ErrResourceNotFound
	}
	flight, err := s.catalog.GetFlight(ctx, in.FlightID)
	if err != nil {
		return "", err
	}
	if flight.AvailableSeats <= 0 {
		return "", domain.ErrNoSeatsAvailable
	}

	seat := in.SeatNumber
	if seat == "" {
		seat = s.pickSeat()
	}
	now := s.clock.Now()

	hb := &domain.HotelBooking{
		ID:              s.newID(),
		UserID:          in.UserID,
		HotelID:         in.HotelID,
		RoomID:          in.RoomID,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Status:          domain.BookingStatusPending,
		TotalPriceCents: Nights(in.CheckIn, in.CheckOut) * room.PriceCents,
		CreatedAt:       now,
	}
	fb := &domain.FlightBooking{
		ID:         s.newID(),
		UserID:     in.UserID,
		FlightID:   in.FlightID,
		SeatNumber: seat,
		Status:     domain.BookingStatusPending,
		PriceCents: flight.PriceCents,
		CreatedAt:  now,
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.hotels.Create(txCtx, hb); err != nil {
			return err
		}
		if err := s.flights.Create(txCtx, fb); err != nil {
			return err
		}
		return s.catalog.DecrementAvailableSeats(txCtx, in.FlightID)
	})
	if err != nil {
		return "", err
	}
	return voyage.EncodeID(hb.ID, fb.ID), nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result {
	return s.transition(ctx, bookingID, bookingType, domain.BookingStatusCancelled, kafka.EventBookingCancelled, "cancel booking", "Booking cancelled successfully")
}

// ConfirmBooking does not check the current status; a cancelled booking can
// be confirmed again.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result {
	return s.transition(ctx, bookingID, bookingType, domain.BookingStatusConfirmed, kafka.EventBookingConfirmed, "confirm booking", "Booking confirmed successfully")
}

func (s *BookingService) transition(ctx context.Context, bookingID string, bookingType domain.BookingType, status domain.BookingStatus, event, op, message string) Result {
	err := s.dispatch(ctx, bookingID, bookingType,
		func(ctx context.Context, id string) error { return s.hotels.UpdateStatus(ctx, id, status) },
		func(ctx context.Context, id string) error { return s.flights.UpdateStatus(ctx, id, status) },
	)
	if err != nil {
		return s.failure(err, op,
			zap.String("booking_id", bookingID), zap.String("booking_type", string(bookingType)))
	}

	s.afterMutation(ctx, kafka.BookingEvent{
		Type:        event,
		BookingID:   bookingID,
		BookingType: string(bookingType),
		Status:      string(status),
	})
	return ok(message)
}

// DeleteBooking permanently removes the booking, or both bookings of a voyage.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string, bookingType domain.BookingType) Result {
	err := s.dispatch(ctx, bookingID, bookingType, s.hotels.Delete, s.flights.Delete)
	if err != nil {
		return s.failure(err, "delete booking",
			zap.String("booking_id", bookingID), zap.String("booking_type", string(bookingType)))
	}

	s.afterMutation(ctx, kafka.BookingEvent{
		Type:        kafka.EventBookingDeleted,
		BookingID:   bookingID,
		BookingType: string(bookingType),
	})
	return ok("Booking deleted successfully")
}

// dispatch applies onHotel or onFlight to the record bookingID names. For a
// voyage the composite id is decoded and both run in one transaction.
func (s *BookingService) dispatch(ctx context.Context, bookingID string, bookingType domain.BookingType, onHotel, onFlight func(ctx context.Context, id string) error) error {
	if bookingID == "" {
		return domain.ErrMissingBookingID
	}

	switch bookingType {
	case domain.BookingTypeHotel:
		return onHotel(ctx, bookingID)
	case domain.BookingTypeFlight:
		return onFlight(ctx, bookingID)
	case domain.BookingTypeVoyage:
		hotelID, flightID, err := voyage.DecodeID(bookingID)
		if err != nil {
			return err
		}
		return s.tx.WithTx(ctx, func(txCtx context.Context) error {
			if err := onHotel(txCtx, hotelID); err != nil {
				return err
			}
			return onFlight(txCtx, flightID)
		})
	default:
		return domain.ErrInvalidBookingType
	}
}

// afterMutation drops cached listings and publishes the event. Both are
// best effort; the mutation has already been committed.
func (s *BookingService) afterMutation(ctx context.Context, event kafka.BookingEvent) {
	if s.cache != nil {
		if err := s.cache.InvalidateBookings(ctx); err != nil {
			s.log.Warn("invalidate bookings cache", zap.Error(err))
		}
	}
	if err := s.publish(ctx, event); err != nil {
		s.log.Warn("publish booking event", zap.String("event", event.Type), zap.String("booking_id", event.BookingID), zap.Error(err))
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	// The mutation is committed; a client that hung up should not drop the
	// event, but a dead broker must not hold the response either.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event.OccurredAt = s.clock.Now()
	if err := s.producer.PublishWithRetry(ctx, s.eventsTopic, event.BookingID, event, s.publishRetries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, event.BookingID, event, s.publishRetries)
	}
	return nil
}

func (s *BookingService) failure(err error, op string, fields ...zap.Field) Result {
	message, code, known := classify(err)
	fields = append(fields, zap.Error(err))
	if !known {
		s.log.Error("failed to "+op, fields...)
		return Result{Success: false, Message: "Failed to " + op, Code: code}
	}
	s.log.Info("rejected "+op, fields...)
	return Result{Success: false, Message: message, Code: code}
}

const day = 24 * time.Hour

// Nights counts started days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int64 {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	n := int64(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

func randomSeat() string {
	row := validation.SeatRows[rand.IntN(len(validation.SeatRows))]
	return string(row) + strconv.Itoa(rand.IntN(validation.MaxSeatNumber)+1)
}

// newID returns a dash-free UUID so that composite voyage ids built from it
// stay decodable.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

var _ BookingUseCase = (*BookingService)(nil)
