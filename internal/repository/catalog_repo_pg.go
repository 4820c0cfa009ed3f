package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	DecrementAvailableSeats(ctx context.Context, flightID string) error
}

type PGCatalogRepository struct {
	querier
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{querier{db: db}}
}

const flightColumns = `id, flight_number, airline, departure_city, arrival_city, departure_time, arrival_time, total_seats, available_seats, price_cents, created_at, updated_at`

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime, &f.TotalSeats, &f.AvailableSeats, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt)
}

func (r *PGCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGCatalogRepository) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	var f domain.Flight
	if err := scanFlight(r.queryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("get flight: %w", err)
	}
	return &f, nil
}

func (r *PGCatalogRepository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	err := r.queryRow(ctx, `SELECT id, hotel_id, type, price_cents FROM rooms WHERE id=$1`, id).
		Scan(&room.ID, &room.HotelID, &room.Type, &room.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

// DecrementAvailableSeats takes one seat off the flight. It refuses to go
// below zero so a concurrent booking of the last seat fails cleanly.
func (r *PGCatalogRepository) DecrementAvailableSeats(ctx context.Context, flightID string) error {
	res, err := r.exec(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now() WHERE id=$1 AND available_seats > 0`, flightID)
	if err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNoSeatsAvailable
	}
	return nil
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
