package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestInitMigrationCreatesBookingTables(t *testing.T) {
	sql, err := migrationFiles.ReadFile("0001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"hotels", "rooms", "flights", "hotel_bookings", "flight_bookings"} {
		assert.Contains(t, string(sql), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
