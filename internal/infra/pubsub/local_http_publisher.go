package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/automation-sub"
	localPublishTimeout = 30 * time.Second
)

// pushEnvelope mirrors the body Google Pub/Sub sends to push endpoints, so the
// worker handles local and cloud deliveries the same way.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher posts events directly to a worker's /push endpoint.
// Used in development in place of a push subscription.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) envelope(event *service.AutomationEvent) ([]byte, error) {
	enc, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: localSubscription,
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(enc.body),
			Attributes:  enc.attrs,
			MessageID:   event.EventID,
			PublishTime: p.now().UTC().Format(time.RFC3339),
		},
	})

	return body, errors.WithStack(err)
}

// PublishAutomationEvent treats any non-2xx worker response as a failure.
func (p *localHTTPPublisher) PublishAutomationEvent(ctx context.Context, event *service.AutomationEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "worker unreachable")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker responded %d", resp.StatusCode)
	}

	p.logger.Debug("Automation event delivered", slog.String("event_id", event.EventID))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
