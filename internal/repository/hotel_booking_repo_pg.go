package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelBookingRepository interface {
	List(ctx context.Context) ([]domain.HotelBooking, error)
	Create(ctx context.Context, booking *domain.HotelBooking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

type PGHotelBookingRepository struct {
	querier
}

func NewHotelBookingRepository(db *pgxpool.Pool) HotelBookingRepository {
	return &PGHotelBookingRepository{querier{db: db}}
}

// List returns every hotel booking, newest first, with hotel and room
// display fields joined in.
func (r *PGHotelBookingRepository) List(ctx context.Context) ([]domain.HotelBooking, error) {
	rows, err := r.query(ctx, `
SELECT b.id, b.user_id, b.hotel_id, b.room_id, b.check_in, b.check_out, b.status, b.total_price_cents, b.created_at,
       h.name, rm.type
FROM hotel_bookings b
JOIN hotels h ON h.id = b.hotel_id
JOIN rooms rm ON rm.id = b.room_id
ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.HotelBooking, 0)
	for rows.Next() {
		var b domain.HotelBooking
		if err := rows.Scan(&b.ID, &b.UserID, &b.HotelID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.Status, &b.TotalPriceCents, &b.CreatedAt, &b.HotelName, &b.RoomType); err != nil {
			return nil, fmt.Errorf("scan hotel booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGHotelBookingRepository) Create(ctx context.Context, b *domain.HotelBooking) error {
	_, err := r.exec(ctx, `
INSERT INTO hotel_bookings (id, user_id, hotel_id, room_id, check_in, check_out, status, total_price_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.UserID, b.HotelID, b.RoomID, b.CheckIn, b.CheckOut, b.Status, b.TotalPriceCents, b.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("create hotel booking: %w", err)
	}
	return nil
}

func (r *PGHotelBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.exec(ctx, `UPDATE hotel_bookings SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("update hotel booking status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *PGHotelBookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.exec(ctx, `DELETE FROM hotel_bookings WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete hotel booking: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

var _ HotelBookingRepository = (*PGHotelBookingRepository)(nil)
