package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
http:
  address: ":9090"
  rate_limit_per_minute: 120
database:
  host: db
  port: 6543
  user: app
  password: secret
  name: travel
  ssl_mode: require
redis:
  addr: redis:6379
kafka:
  brokers: ["k1:9092", "k2:9092"]
  booking_events_topic: booking-events
  notifications_topic: notifications
  group_id: worker
  publish_retries: 5
  publish_timeout_ms: 750
booking:
  voyage_window_minutes: 15
  bookings_cache_ttl_seconds: 5
log:
  level: debug
  format: console
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 120, cfg.HTTP.RateLimitPerMinute)
	assert.Equal(t, "host=db port=6543 user=app password=secret dbname=travel sslmode=require", cfg.Database.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5, cfg.Kafka.PublishRetries)
	assert.Equal(t, 750*time.Millisecond, cfg.Kafka.PublishTimeout())
	assert.Equal(t, 15*time.Minute, cfg.Booking.VoyageWindow())
	assert.Equal(t, 5*time.Second, cfg.Booking.BookingsCacheDuration())
	assert.Equal(t, time.Minute, cfg.Booking.FlightsCacheDuration())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10*time.Minute, cfg.Booking.VoyageWindow())
	assert.Equal(t, 3, cfg.Kafka.PublishRetries)
	assert.Equal(t, 2*time.Second, cfg.Kafka.PublishTimeout())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("http: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":7000\"\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Address)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}
