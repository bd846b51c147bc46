// Package config reads the web server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var sourcePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type Config struct {
	Host         string
	Port         string
	FrontendURL  string
	AvisosSource string
	PageCacheTTL time.Duration
	DateRangeTTL time.Duration
	TestingPause time.Duration
	SSL          bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "5050"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		AvisosSource: getEnv("AVISOS_SOURCE", model.DefaultSource),
	}

	if !sourcePattern.MatchString(cfg.AvisosSource) {
		return nil, fmt.Errorf("%w: AVISOS_SOURCE %q is not a table or view name", ErrInvalidConfig, cfg.AvisosSource)
	}

	var err error
	if cfg.PageCacheTTL, err = getDuration("PAGE_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.DateRangeTTL, err = getDuration("DATE_RANGE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.TestingPause, err = getStrictDuration("TESTING_PAUSE", 100*time.Millisecond); err != nil {
		return nil, err
	}

	if v := os.Getenv("SSL"); v != "" {
		cfg.SSL, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SSL: %v", ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AllowedOrigins always includes the local frontend.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts plain seconds ("60") or a Go duration ("90s", "5m").
// Used for cache TTLs.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
	}

	return d, nil
}

// getStrictDuration requires a unit ("250ms", "1s"); only "0" may go without one.
func getStrictDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s needs a unit such as 250ms: %v", ErrInvalidConfig, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
	}

	return d, nil
}
