package service

import (
	"context"

	"urjabandhu/internal/domain/entity"
)

// AutomationEventType is the event name carried in message attributes.
const AutomationEventType = "automation.action.requested"

// AutomationEvent requests the execution of one device action by the automation worker.
type AutomationEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	UserID    string            `json:"user_id"`
	RuleID    string            `json:"rule_id,omitempty"`
	DeviceID  string            `json:"device_id"`
	Action    entity.RuleAction `json:"action"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishAutomationEvent publishes an automation event for async processing.
	PublishAutomationEvent(ctx context.Context, event *AutomationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
