package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mqtt": map[string]any{
			"brokerUrl":   "",
			"topicPrefix": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"analytics": map[string]any{
			"fixtureFallback": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MQTT_BROKERURL", want: "mqtt.brokerUrl"},
		{envKey: "MQTT_TOPIC_PREFIX", want: "mqtt.topicPrefix"},
		{envKey: "POSTGRES_SSL_MODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USER_NAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ANALYTICS_FIXTUREFALLBACK", want: "analytics.fixtureFallback"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("missing postgres", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"

		require.Error(t, cfg.Validate())
	})

	t.Run("missing secrets", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.SecretKey.Access = "a"

		require.Error(t, cfg.Validate())
	})

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"

		require.NoError(t, cfg.Validate())
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.InDelta(t, defaultEnergyRate, cfg.Energy.DefaultRate, 1e-9)
	assert.Equal(t, "INR", cfg.Energy.DefaultCurrency)
	assert.True(t, cfg.Analytics.FixtureFallback)
	assert.Equal(t, 3, cfg.Analytics.MovingAverageWindow)
	assert.Equal(t, 5*time.Second, cfg.Realtime.Interval)
}
