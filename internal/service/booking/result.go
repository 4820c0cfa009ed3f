package booking

import (
	"errors"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/validation"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeNoSeats         = "NO_SEATS_AVAILABLE"
	CodeMissingID       = "MISSING_BOOKING_ID"
	CodeInvalidVoyageID = "INVALID_VOYAGE_ID_FORMAT"
	CodeInvalidType     = "INVALID_BOOKING_TYPE"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeStoreFailure    = "STORE_FAILURE"
)

// Result is what every lifecycle operation returns. Failures are reported
// here and never as a Go error; callers must check Success.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	// ID is the created voyage id, set by CreateVoyageBooking.
	ID string `json:"id,omitempty"`
}

type ListResult struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Code    string                   `json:"code,omitempty"`
	Data    []domain.CombinedBooking `json:"data"`
}

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

// classify maps err to a display message and code. known is false for
// errors that are not part of the booking taxonomy, i.e. store failures.
func classify(err error) (message, code string, known bool) {
	var verrs validation.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		return "No seats available for this flight", CodeNoSeats, true
	case errors.Is(err, domain.ErrResourceNotFound):
		return "Room or flight not found", CodeNotFound, true
	case errors.Is(err, domain.ErrBookingNotFound):
		return "Booking not found", CodeNotFound, true
	case errors.Is(err, domain.ErrMissingBookingID):
		return "Booking ID is required", CodeMissingID, true
	case errors.Is(err, domain.ErrInvalidVoyageIDFormat):
		return "Invalid voyage ID format", CodeInvalidVoyageID, true
	case errors.Is(err, domain.ErrInvalidBookingType):
		return "Invalid booking type", CodeInvalidType, true
	case errors.Is(err, domain.ErrUserRequired):
		return "You must be signed in to book", CodeUnauthorized, true
	case errors.As(err, &verrs):
		return verrs.Error(), CodeValidation, true
	default:
		return "", CodeStoreFailure, false
	}
}
