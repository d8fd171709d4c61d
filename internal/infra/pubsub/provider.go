// Package pubsub publishes automation events for the worker. The transport is
// picked by pubsub.provider; an empty provider disables publishing.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/domain/constants"
	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type factory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var factories = map[string]factory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
	constants.PubSubProviderRabbitMQ: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.AMQPURL == "" {
			return nil, errors.New("pubsub.amqpUrl is required")
		}

		return NewRabbitMQPublisher(cfg.AMQPURL, cfg.Exchange, cfg.RoutingKey, logger)
	},
}

// NewEventPublisher builds the configured publisher and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Automation event publishing disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	logger := params.Logger.With(slog.String("pubsub", cfg.Provider))
	publisher, err := build(params.Ctx, cfg, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %s", cfg.Provider)
	}

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAutomationEvent(_ context.Context, event *service.AutomationEvent) error {
	p.logger.Debug("Automation event dropped", slog.String("event_id", event.EventID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// encodedEvent is the wire form shared by every transport: a JSON body plus
// string attributes for routing and tracing.
type encodedEvent struct {
	body  []byte
	attrs map[string]string
}

func encodeEvent(event *service.AutomationEvent) (encodedEvent, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return encodedEvent{}, errors.Wrap(err, "failed to encode automation event")
	}

	return encodedEvent{body: body, attrs: eventAttributes(event)}, nil
}

func eventAttributes(event *service.AutomationEvent) map[string]string {
	attrs := map[string]string{
		"event_type": service.AutomationEventType,
		"event_id":   event.EventID,
		"user_id":    event.UserID,
		"device_id":  event.DeviceID,
	}
	for k, v := range map[string]string{"rule_id": event.RuleID, "request_id": event.RequestID} {
		if v != "" {
			attrs[k] = v
		}
	}

	return attrs
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
