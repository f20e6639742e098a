//go:build unit

package config_test

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, config.TransportSMTP, cfg.Notify.Transport)
		assert.Equal(t, "Asia/Kolkata", cfg.SMTP.TimeZone)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
		assert.Empty(t, cfg.Redis.Addr)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("NOTIFY_TRANSPORT", "kafka")
		t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
		t.Setenv("SMTP_PORT", "465")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, config.TransportKafka, cfg.Notify.Transport)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
		assert.True(t, cfg.SMTP.SMTPImplicitTLS())
	})

	t.Run("unknown transport is rejected", func(t *testing.T) {
		t.Setenv("NOTIFY_TRANSPORT", "pigeon")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOTIFY_TRANSPORT")
	})
}

func TestDBConfig_BuildDSN(t *testing.T) {
	t.Run("built from parts", func(t *testing.T) {
		c := config.DBConfig{Host: "db", Port: "5432", User: "app", Password: "p@ss", DBName: "hotel", SSLMode: "disable", TimeZone: "UTC"}
		assert.Equal(t, "postgres://app:p%40ss@db:5432/hotel?sslmode=disable&timezone=UTC", c.BuildDSN())
	})

	t.Run("DATABASE_URL wins", func(t *testing.T) {
		c := config.DBConfig{URL: "postgres://u:p@host/db", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@host/db", c.BuildDSN())
	})
}

func TestSMTPConfig_FromAddress(t *testing.T) {
	c := config.SMTPConfig{FromName: "Scaler Hotel", User: "bookings@example.com"}
	assert.Equal(t, "Scaler Hotel <bookings@example.com>", c.FromAddress())
}
