package domain

import "time"

// Voyage is a hotel booking and a flight booking of the same user presented
// as one trip. It is derived on read and never stored.
type Voyage struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	PriceCents int64         `json:"price_cents"`
	Hotel      HotelBooking  `json:"hotel"`
	Flight     FlightBooking `json:"flight"`
}

// CombinedBooking is a tagged union: exactly one of Hotel, Flight or Voyage
// is set, matching Type.
type CombinedBooking struct {
	Type   BookingType    `json:"type"`
	Hotel  *HotelBooking  `json:"hotel,omitempty"`
	Flight *FlightBooking `json:"flight,omitempty"`
	Voyage *Voyage        `json:"voyage,omitempty"`
}

func HotelEntry(b HotelBooking) CombinedBooking {
	return CombinedBooking{Type: BookingTypeHotel, Hotel: &b}
}

func FlightEntry(b FlightBooking) CombinedBooking {
	return CombinedBooking{Type: BookingTypeFlight, Flight: &b}
}

func VoyageEntry(v Voyage) CombinedBooking {
	return CombinedBooking{Type: BookingTypeVoyage, Voyage: &v}
}

// ID returns the identifier callers pass back to lifecycle operations
// together with Type.
func (c CombinedBooking) ID() string {
	switch c.Type {
	case BookingTypeHotel:
		if c.Hotel != nil {
			return c.Hotel.ID
		}
	case BookingTypeFlight:
		if c.Flight != nil {
			return c.Flight.ID
		}
	case BookingTypeVoyage:
		if c.Voyage != nil {
			return c.Voyage.ID
		}
	}
	return ""
}

func (c CombinedBooking) CreatedAt() time.Time {
	switch c.Type {
	case BookingTypeHotel:
		if c.Hotel != nil {
			return c.Hotel.CreatedAt
		}
	case BookingTypeFlight:
		if c.Flight != nil {
			return c.Flight.CreatedAt
		}
	case BookingTypeVoyage:
		if c.Voyage != nil {
			return c.Voyage.CreatedAt
		}
	}
	return time.Time{}
}

func (c CombinedBooking) Status() BookingStatus {
	switch c.Type {
	case BookingTypeHotel:
		if c.Hotel != nil {
			return c.Hotel.Status
		}
	case BookingTypeFlight:
		if c.Flight != nil {
			return c.Flight.Status
		}
	case BookingTypeVoyage:
		if c.Voyage != nil {
			return c.Voyage.Status
		}
	}
	return ""
}
