package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Listing names a cached combined-bookings view.
type Listing string

const (
	ListingStandalone Listing = "standalone"
	ListingVoyages    Listing = "voyages"
)

type RedisCache struct {
	client      redis.UniversalClient
	bookingsTTL time.Duration
	flightsTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, bookingsTTL, flightsTTL time.Duration) *RedisCache {
	return NewWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		bookingsTTL, flightsTTL,
	)
}

func NewWithClient(client redis.UniversalClient, bookingsTTL, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, bookingsTTL: bookingsTTL, flightsTTL: flightsTTL}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Cached listings live under a generation number that every booking
// mutation bumps. A reader that loaded rows before a mutation stores them
// under the old generation, where no later reader looks.
const bookingsGenerationKey = "cache:bookings:gen"

// GetBookings returns the cached listing, or nil on a miss, together with
// the generation it was looked up under. Pass that generation to
// SetBookings.
func (c *RedisCache) GetBookings(ctx context.Context, listing Listing) ([]domain.CombinedBooking, int64, error) {
	gen, err := c.bookingsGeneration(ctx)
	if err != nil {
		return nil, 0, err
	}
	var out []domain.CombinedBooking
	ok, err := c.getJSON(ctx, bookingsKey(listing, gen), &out)
	if err != nil || !ok {
		return nil, gen, err
	}
	return out, gen, nil
}

func (c *RedisCache) SetBookings(ctx context.Context, listing Listing, gen int64, bookings []domain.CombinedBooking) error {
	return c.setJSON(ctx, bookingsKey(listing, gen), bookings, c.bookingsTTL)
}

// InvalidateBookings moves every listing to a new generation. Entries of
// older generations expire with their TTL.
func (c *RedisCache) InvalidateBookings(ctx context.Context) error {
	return c.client.Incr(ctx, bookingsGenerationKey).Err()
}

func (c *RedisCache) bookingsGeneration(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, bookingsGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	var out []domain.Flight
	ok, err := c.getJSON(ctx, flightsKey(), &out)
	if err != nil || !ok {
		return nil, err
	}
	return out, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setJSON(ctx, flightsKey(), flights, c.flightsTTL)
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func bookingsKey(listing Listing, gen int64) string {
	return "cache:bookings:" + string(listing) + ":" + strconv.FormatInt(gen, 10)
}

func flightsKey() string {
	return "cache:flights"
}
