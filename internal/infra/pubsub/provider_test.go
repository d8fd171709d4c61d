package pubsub

import (
	"context"
	"testing"

	"urjabandhu/config"
	"urjabandhu/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newProviderParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: testLogger(),
	}
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `unknown pubsub provider "kafka"`},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}, wantErr: "amqpUrl"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newProviderParams(t, tt.cfg))

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	enc, err := encodeEvent(sampleEvent())

	require.NoError(t, err)
	assert.Contains(t, string(enc.body), `"device_id":"device-1"`)
	assert.Equal(t, "req-1", enc.attrs["request_id"])
}
