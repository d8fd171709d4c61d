package pubsub

import (
	"context"
	"log/slog"

	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange   = "urjabandhu.automation"
	defaultRoutingKey = service.AutomationEventType
)

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher publishes automation events to a durable topic exchange.
type rabbitMQPublisher struct {
	conn       *amqp.Connection
	channel    amqpChannel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the exchange.
func NewRabbitMQPublisher(url, exchange, routingKey string, logger *slog.Logger) (service.EventPublisher, error) {
	if exchange == "" {
		exchange = defaultExchange
	}
	if routingKey == "" {
		routingKey = defaultRoutingKey
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ publisher initialized",
		slog.String("exchange", exchange),
		slog.String("routing_key", routingKey),
	)

	return &rabbitMQPublisher{
		conn:       conn,
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishAutomationEvent(ctx context.Context, event *service.AutomationEvent) error {
	enc, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := make(amqp.Table, len(enc.attrs))
	for k, v := range enc.attrs {
		headers[k] = v
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          service.AutomationEventType,
		Headers:       headers,
		Body:          enc.body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish automation event")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("routing_key", p.routingKey),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	var err error
	if p.channel != nil {
		err = p.channel.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return errors.WithStack(err)
}
