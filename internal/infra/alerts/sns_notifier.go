// Package alerts publishes urgent energy alerts to an AWS SNS topic.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsNotifier struct {
	client   snsPublisher
	topicARN string
	logger   *slog.Logger
}

type alertMessage struct {
	AlertID   string  `json:"alert_id"`
	UserID    string  `json:"user_id"`
	AlertType string  `json:"alert_type"`
	Severity  string  `json:"severity"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	DeviceID  *string `json:"device_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// PublishAlert sends the alert as JSON; severity is a message attribute so
// subscribers can filter.
func (n *snsNotifier) PublishAlert(ctx context.Context, alert *entity.EnergyAlert) error {
	msg := alertMessage{
		AlertID:   alert.ID.String(),
		UserID:    alert.UserID.String(),
		AlertType: alert.AlertType,
		Severity:  string(alert.Severity),
		Title:     alert.Title,
		Message:   alert.Message,
		CreatedAt: alert.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if alert.DeviceID != nil {
		msg.DeviceID = aws.String(alert.DeviceID.String())
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject(alert)),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"severity": {DataType: aws.String("String"), StringValue: aws.String(string(alert.Severity))},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish alert to SNS")
	}

	n.logger.Info("Alert published",
		slog.String("alert_id", msg.AlertID),
		slog.String("message_id", aws.ToString(out.MessageId)),
	)

	return nil
}

// SNS subjects are limited to 100 characters.
func subject(alert *entity.EnergyAlert) string {
	s := fmt.Sprintf("[%s] %s", alert.Severity, alert.Title)
	if len(s) > 100 {
		s = s[:100]
	}

	return s
}

type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) PublishAlert(_ context.Context, alert *entity.EnergyAlert) error {
	n.logger.Debug("[NoopAlerts] SNS not configured, skipping", slog.String("alert_id", alert.ID.String()))

	return nil
}

// Params holds the dependencies for NewAlertNotifier.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertNotifier builds an SNS notifier from the default AWS credential chain.
func NewAlertNotifier(params Params) (service.AlertNotifier, error) {
	cfg := params.Config.Alerts
	if cfg == nil || cfg.TopicARN == "" {
		params.Logger.Info("Alerts topic not configured, using no-op notifier")

		return &noopNotifier{logger: params.Logger}, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return &snsNotifier{
		client:   sns.NewFromConfig(awsCfg),
		topicARN: cfg.TopicARN,
		logger:   params.Logger,
	}, nil
}
