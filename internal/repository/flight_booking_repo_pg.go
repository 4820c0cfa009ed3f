package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightBookingRepository interface {
	List(ctx context.Context) ([]domain.FlightBooking, error)
	Create(ctx context.Context, booking *domain.FlightBooking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

type PGFlightBookingRepository struct {
	querier
}

func NewFlightBookingRepository(db *pgxpool.Pool) FlightBookingRepository {
	return &PGFlightBookingRepository{querier{db: db}}
}

func (r *PGFlightBookingRepository) List(ctx context.Context) ([]domain.FlightBooking, error) {
	rows, err := r.query(ctx, `
SELECT b.id, b.user_id, b.flight_id, b.seat_number, b.status, b.price_cents, b.created_at,
       f.flight_number, f.airline, f.departure_city, f.arrival_city, f.departure_time, f.arrival_time
FROM flight_bookings b
JOIN flights f ON f.id = b.flight_id
ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list flight bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.FlightBooking, 0)
	for rows.Next() {
		var b domain.FlightBooking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.SeatNumber, &b.Status, &b.PriceCents, &b.CreatedAt,
			&b.FlightNumber, &b.Airline, &b.DepartureCity, &b.ArrivalCity, &b.DepartureTime, &b.ArrivalTime); err != nil {
			return nil, fmt.Errorf("scan flight booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGFlightBookingRepository) Create(ctx context.Context, b *domain.FlightBooking) error {
	_, err := r.exec(ctx, `
INSERT INTO flight_bookings (id, user_id, flight_id, seat_number, status, price_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.UserID, b.FlightID, b.SeatNumber, b.Status, b.PriceCents, b.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("create flight booking: %w", err)
	}
	return nil
}

func (r *PGFlightBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.exec(ctx, `UPDATE flight_bookings SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("update flight booking status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGFlightBookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.exec(ctx, `DELETE FROM flight_bookings WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete flight booking: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

var _ FlightBookingRepository = (*PGFlightBookingRepository)(nil)
