package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/config"
)

type smtpTestConfig struct {
	Host string `env:"TEST_SMTP_HOST,required"`
	Port int    `env:"TEST_SMTP_PORT" envDefault:"587"`
}

type optionalTestConfig struct {
	Dir string `env:"TEST_MAILER_DEV_DIR"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env into struct with defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SMTP_HOST", "smtp.example.com")

		var cfg smtpTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "smtp.example.com", cfg.Host)
		assert.Equal(t, 587, cfg.Port)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()

		var cfg smtpTestConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		config.ResetCache()

		err := config.Load[smtpTestConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("returns cached copy on repeated load", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SMTP_HOST", "first.example.com")

		var first smtpTestConfig
		require.NoError(t, config.Load(&first))

		// Env change after the first load must not be visible.
		t.Setenv("TEST_SMTP_HOST", "second.example.com")

		var second smtpTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first.example.com", second.Host)
	})

	t.Run("optional fields default to zero values", func(t *testing.T) {
		config.ResetCache()

		var cfg optionalTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Empty(t, cfg.Dir)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()

	var cfg smtpTestConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
