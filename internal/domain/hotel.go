package domain

import "time"

type Hotel struct {
	ID   string
	Name string
	City string
}

type Room struct {
	ID         string
	HotelID    string
	Type       string
	PriceCents int64
}

// HotelBooking is a row of hotel_bookings. HotelName and RoomType are joined
// in by list queries and are empty on freshly created records.
type HotelBooking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	HotelID         string        `json:"hotel_id"`
	RoomID          string        `json:"room_id"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Status          BookingStatus `json:"status"`
	TotalPriceCents int64         `json:"total_price_cents"`
	CreatedAt       time.Time     `json:"created_at"`

	HotelName string `json:"hotel_name,omitempty"`
	RoomType  string `json:"room_type,omitempty"`
}
