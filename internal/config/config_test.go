package config

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "FRONTEND_URL", "AVISOS_SOURCE", "PAGE_CACHE_TTL", "DATE_RANGE_TTL", "TESTING_PAUSE", "SSL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "0.0.0.0:5050", cfg.Addr())
	assert.Equal(t, "avisos", cfg.AvisosSource)
	assert.Equal(t, time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.DateRangeTTL)
	assert.Equal(t, 100*time.Millisecond, cfg.TestingPause)
	assert.Equal(t, false, cfg.SSL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("FRONTEND_URL", "https://boletin.example")
	t.Setenv("AVISOS_SOURCE", "public.vista_avisos")
	t.Setenv("PAGE_CACHE_TTL", "0")
	t.Setenv("DATE_RANGE_TTL", "90s")
	t.Setenv("TESTING_PAUSE", "250ms")
	t.Setenv("SSL", "true")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "public.vista_avisos", cfg.AvisosSource)
	assert.Equal(t, time.Duration(0), cfg.PageCacheTTL)
	assert.Equal(t, 90*time.Second, cfg.DateRangeTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.TestingPause)
	assert.Equal(t, true, cfg.SSL)
	assert.Equal(t, []string{"http://localhost:3000", "https://boletin.example"}, cfg.AllowedOrigins())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "source with sql", key: "AVISOS_SOURCE", value: "avisos; DROP TABLE avisos"},
		{name: "bad duration", key: "PAGE_CACHE_TTL", value: "soon"},
		{name: "negative seconds", key: "DATE_RANGE_TTL", value: "-5"},
		{name: "bad bool", key: "SSL", value: "maybe"},
		{name: "pause without unit", key: "TESTING_PAUSE", value: "100"},
		{name: "negative pause", key: "TESTING_PAUSE", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Equal(t, true, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoad_ZeroPause(t *testing.T) {
	clearEnv(t)
	t.Setenv("TESTING_PAUSE", "0")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, time.Duration(0), cfg.TestingPause)
}
