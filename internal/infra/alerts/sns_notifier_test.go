package alerts

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSNSNotifier_PublishAlert(t *testing.T) {
	client := &fakeSNS{}
	notifier := &snsNotifier{client: client, topicARN: "arn:aws:sns:ap-south-1:123:alerts", logger: testLogger()}

	deviceID := uuid.New()
	alert := &entity.EnergyAlert{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		AlertType: "high_consumption",
		Severity:  entity.AlertSeverityCritical,
		Title:     "Geyser running for 3 hours",
		DeviceID:  &deviceID,
		CreatedAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, notifier.PublishAlert(context.Background(), alert))

	require.NotNil(t, client.input)
	assert.Equal(t, "arn:aws:sns:ap-south-1:123:alerts", aws.ToString(client.input.TopicArn))
	assert.Equal(t, "[critical] Geyser running for 3 hours", aws.ToString(client.input.Subject))
	assert.Equal(t, "critical", aws.ToString(client.input.MessageAttributes["severity"].StringValue))

	var body alertMessage
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.input.Message)), &body))
	assert.Equal(t, alert.ID.String(), body.AlertID)
	require.NotNil(t, body.DeviceID)
	assert.Equal(t, deviceID.String(), *body.DeviceID)
}

func TestSNSNotifier_PublishAlert_Error(t *testing.T) {
	notifier := &snsNotifier{client: &fakeSNS{err: errors.New("throttled")}, topicARN: "arn", logger: testLogger()}

	err := notifier.PublishAlert(context.Background(), &entity.EnergyAlert{Severity: entity.AlertSeverityHigh})
	assert.ErrorContains(t, err, "throttled")
}

func TestSubject_Truncated(t *testing.T) {
	s := subject(&entity.EnergyAlert{Severity: entity.AlertSeverityHigh, Title: strings.Repeat("x", 200)})
	assert.Len(t, s, 100)
}

func TestNewAlertNotifier_NotConfigured(t *testing.T) {
	notifier, err := NewAlertNotifier(Params{Ctx: context.Background(), Config: &config.Config{}, Logger: testLogger()})
	require.NoError(t, err)

	assert.IsType(t, &noopNotifier{}, notifier)
}
