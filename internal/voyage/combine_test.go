package voyage

import (
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_PairedVoyage(t *testing.T) {
	h := hotel("H1", "U1", t0)
	h.TotalPriceCents = 20000
	f := flight("F1", "U1", t0.Add(5*time.Minute))
	f.Status = domain.BookingStatusConfirmed
	f.PriceCents = 9000

	out := Combine([]domain.HotelBooking{h}, []domain.FlightBooking{f}, DefaultWindow)

	require.Len(t, out, 1)
	assert.Equal(t, domain.BookingTypeVoyage, out[0].Type)
	require.NotNil(t, out[0].Voyage)
	assert.Nil(t, out[0].Hotel)
	assert.Nil(t, out[0].Flight)

	v := out[0].Voyage
	assert.Equal(t, "voyage-H1-F1", v.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, v.Status)
	assert.Equal(t, t0, v.CreatedAt)
	assert.Equal(t, int64(29000), v.PriceCents)
}

func TestCombine_DifferentUsersStayStandalone(t *testing.T) {
	out := Combine(
		[]domain.HotelBooking{hotel("H1", "U1", t0)},
		[]domain.FlightBooking{flight("F1", "U2", t0.Add(5*time.Minute))},
		DefaultWindow,
	)

	require.Len(t, out, 2)
	assert.Equal(t, domain.BookingTypeFlight, out[0].Type)
	assert.Equal(t, "F1", out[0].ID())
	assert.Equal(t, domain.BookingTypeHotel, out[1].Type)
	assert.Equal(t, "H1", out[1].ID())
}

func TestCombine_VoyagesFirstThenStandaloneNewestFirst(t *testing.T) {
	hotels := []domain.HotelBooking{
		hotel("H3", "U3", t0.Add(2*time.Hour)),
		hotel("H1", "U1", t0),
	}
	flights := []domain.FlightBooking{
		flight("F2", "U2", t0.Add(time.Hour)),
		flight("F1", "U1", t0.Add(-2*time.Minute)),
	}

	out := Combine(hotels, flights, DefaultWindow)

	ids := make([]string, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []string{"voyage-H1-F1", "H3", "F2"}, ids)
}

func TestStandalone_NoVoyageDetection(t *testing.T) {
	out := Standalone(
		[]domain.HotelBooking{hotel("H1", "U1", t0)},
		[]domain.FlightBooking{flight("F1", "U1", t0.Add(time.Minute))},
	)

	require.Len(t, out, 2)
	assert.Equal(t, "F1", out[0].ID())
	assert.Equal(t, "H1", out[1].ID())
	for _, c := range out {
		assert.NotEqual(t, domain.BookingTypeVoyage, c.Type)
	}
}
