package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// BookingType tags the variant of a CombinedBooking and selects the record(s)
// a lifecycle operation acts on.
type BookingType string

const (
	BookingTypeHotel  BookingType = "HOTEL"
	BookingTypeFlight BookingType = "FLIGHT"
	BookingTypeVoyage BookingType = "VOYAGE"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeHotel, BookingTypeFlight, BookingTypeVoyage:
		return true
	default:
		return false
	}
}
