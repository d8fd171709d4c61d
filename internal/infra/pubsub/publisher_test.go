package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/domain/service"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.AutomationEvent {
	return &service.AutomationEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		UserID:    "user-1",
		RuleID:    "rule-1",
		DeviceID:  "device-1",
		Action:    entity.RuleAction{Type: entity.ActionTypeOptimize},
	}
}

func TestLocalHTTPPublisher_PublishAutomationEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	require.NoError(t, publisher.PublishAutomationEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.AutomationEventType, received.Message.Attributes["event_type"])
	assert.Equal(t, "rule-1", received.Message.Attributes["rule_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AutomationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "device-1", decoded.DeviceID)
	assert.Equal(t, entity.ActionTypeOptimize, decoded.Action.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishAutomationEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "503")
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg

	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true

	return nil
}

func TestRabbitMQPublisher_PublishAutomationEvent(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &rabbitMQPublisher{
		channel:    ch,
		exchange:   defaultExchange,
		routingKey: defaultRoutingKey,
		logger:     testLogger(),
	}

	require.NoError(t, publisher.PublishAutomationEvent(context.Background(), sampleEvent()))

	assert.Equal(t, defaultExchange, ch.exchange)
	assert.Equal(t, service.AutomationEventType, ch.key)
	assert.Equal(t, "evt-1", ch.msg.MessageId)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "device-1", ch.msg.Headers["device_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: testLogger()}

	assert.NoError(t, publisher.PublishAutomationEvent(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	attrs := eventAttributes(&service.AutomationEvent{EventID: "e", UserID: "u", DeviceID: "d"})

	assert.NotContains(t, attrs, "rule_id")
	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "d", attrs["device_id"])
}
