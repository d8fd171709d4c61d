package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"urjabandhu/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent *messaging.Message
	err  error
}

func (c *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	c.sent = message
	if c.err != nil {
		return "", c.err
	}

	return "projects/test/messages/1", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client, logger: testLogger()}

	err := svc.SendSingleNotification(context.Background(), "token-1", "High usage", "AC is drawing 2kW", map[string]string{"category": "alert"})
	require.NoError(t, err)

	require.NotNil(t, client.sent)
	assert.Equal(t, "token-1", client.sent.Token)
	assert.Equal(t, "High usage", client.sent.Notification.Title)
	assert.Equal(t, "alert", client.sent.Data["category"])
}

func TestFirebaseService_SendSingleNotification_Error(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("network down")}
	svc := &firebaseService{client: client, logger: testLogger()}

	err := svc.SendSingleNotification(context.Background(), "token-1", "t", "b", nil)
	assert.ErrorContains(t, err, "failed to send notification")
}

func TestNewNotificationService_NotConfigured(t *testing.T) {
	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopNotificationService{}, svc)
	assert.NoError(t, svc.SendSingleNotification(context.Background(), "t", "title", "body", nil))
}
