package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address            string `yaml:"address"`
	SwaggerDir         string `yaml:"swagger_dir"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries"`
	PublishTimeoutMS   int      `yaml:"publish_timeout_ms"`
}

func (k KafkaConfig) PublishTimeout() time.Duration {
	return time.Duration(k.PublishTimeoutMS) * time.Millisecond
}

type BookingConfig struct {
	VoyageWindowMinutes int `yaml:"voyage_window_minutes"`
	BookingsCacheTTL    int `yaml:"bookings_cache_ttl_seconds"`
	FlightsCacheTTL     int `yaml:"flights_cache_ttl_seconds"`
}

func (b BookingConfig) VoyageWindow() time.Duration {
	return time.Duration(b.VoyageWindowMinutes) * time.Minute
}

func (b BookingConfig) BookingsCacheDuration() time.Duration {
	return time.Duration(b.BookingsCacheTTL) * time.Second
}

func (b BookingConfig) FlightsCacheDuration() time.Duration {
	return time.Duration(b.FlightsCacheTTL) * time.Second
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Kafka.PublishRetries <= 0 {
		c.Kafka.PublishRetries = 3
	}
	if c.Kafka.PublishTimeoutMS <= 0 {
		c.Kafka.PublishTimeoutMS = 2000
	}
	if c.Booking.VoyageWindowMinutes <= 0 {
		c.Booking.VoyageWindowMinutes = 10
	}
	if c.Booking.BookingsCacheTTL <= 0 {
		c.Booking.BookingsCacheTTL = 30
	}
	if c.Booking.FlightsCacheTTL <= 0 {
		c.Booking.FlightsCacheTTL = 60
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}
