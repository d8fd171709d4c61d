package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pushEnvelope is the body of a Pub/Sub push request.
type pushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// event decodes message.data, base64 JSON of a service.AutomationEvent.
func (env *pushEnvelope) event() (*service.AutomationEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(env.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.AutomationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an automation event")
	}

	return &event, nil
}

// requestID picks the first non-empty of the request_id attribute, the
// event's own ID, the inbound X-Request-Id, or a fresh uuid.
func (env *pushEnvelope) requestID(ctx context.Context, event *service.AutomationEvent) string {
	for _, id := range []string{
		env.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}
