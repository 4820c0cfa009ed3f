package voyage

import (
	"strings"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

const idPrefix = "voyage-"

// EncodeID builds the composite voyage id "voyage-<hotelBookingID>-<flightBookingID>".
// Callers round-trip this string, so the format must not change.
func EncodeID(hotelBookingID, flightBookingID string) string {
	return idPrefix + hotelBookingID + "-" + flightBookingID
}

// DecodeID splits a composite voyage id into its hotel and flight booking ids.
// Underlying ids that contain '-' cannot be decoded and are rejected.
func DecodeID(voyageID string) (hotelBookingID, flightBookingID string, err error) {
	parts := strings.Split(strings.TrimPrefix(voyageID, idPrefix), "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domain.ErrInvalidVoyageIDFormat
	}
	return parts[0], parts[1], nil
}
