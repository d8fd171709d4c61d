package devicecontrol

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"urjabandhu/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeToken completes immediately with err.
type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}
func (t *fakeToken) Error() error { return t.err }

// fakeClient records publishes; embedding the interface leaves other methods unimplemented.
type fakeClient struct {
	mqtt.Client

	topic    string
	qos      byte
	retained bool
	payload  []byte
	err      error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload any) mqtt.Token {
	c.topic = topic
	c.qos = qos
	c.retained = retained
	c.payload, _ = payload.([]byte)

	return &fakeToken{err: c.err}
}

func (c *fakeClient) IsConnected() bool { return false }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "urjabandhu/devices/abc/control", Topic("urjabandhu", "abc"))
}

func TestMQTTCommander_SendCommand(t *testing.T) {
	client := &fakeClient{}
	commander := &mqttCommander{client: client, topicPrefix: "home", qos: 1, logger: testLogger()}

	deviceID := uuid.New()
	cmd := &service.DeviceCommand{DeviceID: deviceID, State: "on", PowerLevel: 80, IssuedAt: time.Now().UTC()}

	require.NoError(t, commander.SendCommand(context.Background(), cmd))

	assert.Equal(t, "home/devices/"+deviceID.String()+"/control", client.topic)
	assert.Equal(t, byte(1), client.qos)
	assert.True(t, client.retained)

	var sent service.DeviceCommand
	require.NoError(t, json.Unmarshal(client.payload, &sent))
	assert.Equal(t, "on", sent.State)
	assert.Equal(t, 80, sent.PowerLevel)
}

func TestMQTTCommander_SendCommand_PublishError(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	commander := &mqttCommander{client: client, topicPrefix: "home", logger: testLogger()}

	err := commander.SendCommand(context.Background(), &service.DeviceCommand{DeviceID: uuid.New(), State: "off"})
	assert.ErrorContains(t, err, "not connected")
}

func TestNoopCommander(t *testing.T) {
	commander := &noopCommander{logger: testLogger()}

	assert.NoError(t, commander.SendCommand(context.Background(), &service.DeviceCommand{DeviceID: uuid.New()}))
	assert.NoError(t, commander.Close())
}
