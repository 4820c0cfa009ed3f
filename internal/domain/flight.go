package domain

import "time"

type Flight struct {
	ID             string    `json:"id"`
	FlightNumber   string    `json:"flight_number"`
	Airline        string    `json:"airline"`
	DepartureCity  string    `json:"departure_city"`
	ArrivalCity    string    `json:"arrival_city"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	PriceCents     int64     `json:"price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FlightBooking is a row of flight_bookings. The flight display fields are
// joined in by list queries.
type FlightBooking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	FlightID   string        `json:"flight_id"`
	SeatNumber string        `json:"seat_number"`
	Status     BookingStatus `json:"status"`
	PriceCents int64         `json:"price_cents"`
	CreatedAt  time.Time     `json:"created_at"`

	FlightNumber  string    `json:"flight_number,omitempty"`
	Airline       string    `json:"airline,omitempty"`
	DepartureCity string    `json:"departure_city,omitempty"`
	ArrivalCity   string    `json:"arrival_city,omitempty"`
	DepartureTime time.Time `json:"departure_time,omitzero"`
	ArrivalTime   time.Time `json:"arrival_time,omitzero"`
}
