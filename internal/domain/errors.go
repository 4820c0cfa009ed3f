package domain

import "errors"

var (
	ErrResourceNotFound      = errors.New("room or flight not found")
	ErrNoSeatsAvailable      = errors.New("no seats available for this flight")
	ErrMissingBookingID      = errors.New("booking id is required")
	ErrInvalidVoyageIDFormat = errors.New("invalid voyage id format")
	ErrInvalidBookingType    = errors.New("invalid booking type")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrUserRequired          = errors.New("authenticated user is required")
)
