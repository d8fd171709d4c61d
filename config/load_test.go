package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
http:
  port: 8080
  timeouts:
    readTimeout: 15s
postgres:
  database: urjabandhu
  sslMode: disable
mqtt:
  topicPrefix: devices
secretKey:
  access: a
  refresh: r
`

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))

	return path
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t)

	cfg, err := load(path, []string{
		"HTTP_PORT=9090",
		"MQTT_TOPIC_PREFIX=homes",
		"HTTP_TIMEOUTS_READTIMEOUT=2s",
	})
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "homes", cfg.MQTT.TopicPrefix)
	assert.Equal(t, "a", cfg.SecretKey.Access)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), configFileName), nil)

	assert.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	path := writeConfig(t)
	empty := t.TempDir()

	got, err := findConfigFile([]string{empty, filepath.Dir(path)})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = findConfigFile([]string{empty})
	assert.ErrorContains(t, err, "config.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable-gap",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(k string) string { return env[k] })

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}
