package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Enabled reports whether the limit should be enforced at all.
func (c RateLimitConfig) Enabled() bool {
	return c.Requests > 0 && c.Interval > 0
}

// Config aggregates application-wide configuration values.
type Config struct {
	GoogleMapsAPIKey  string
	GoogleMapsBaseURL string
	Port              string
	HTTPTimeout       time.Duration
	CORSOrigins       []string
	PlacesRateLimit   RateLimitConfig
}

// defaultCORSOrigins covers the local frontend dev servers.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

// Load reads configuration from environment variables and applies sane defaults.
// A missing Places credential is not an error here: /health reports it and the
// search path fails with a configuration error instead.
func Load() (*Config, error) {
	cfg := &Config{
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		GoogleMapsBaseURL: getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		Port:              getEnv("PORT", "8080"),
		HTTPTimeout:       parseDuration(getEnv("HTTP_TIMEOUT", "30s")),
		CORSOrigins:       parseOrigins(os.Getenv("CORS_ORIGINS")),
	}

	if raw := strings.TrimSpace(os.Getenv("PLACES_RATE_LIMIT")); raw != "" {
		rl, err := parseRateLimit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PLACES_RATE_LIMIT value: %w", err)
		}
		cfg.PlacesRateLimit = rl
	}

	return cfg, nil
}

// IsGoogleMapsConfigured reports whether a Places API credential is present.
func (c *Config) IsGoogleMapsConfigured() bool {
	return strings.TrimSpace(c.GoogleMapsAPIKey) != ""
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func parseOrigins(value string) []string {
	if strings.TrimSpace(value) == "" {
		return defaultCORSOrigins
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return defaultCORSOrigins
	}
	return origins
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
