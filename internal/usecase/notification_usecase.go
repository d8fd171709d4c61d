package usecase

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifyInput is a notification to persist and, if the user allows it, push.
type NotifyInput struct {
	Title     string
	Message   string
	Type      entity.NotificationType
	Category  string
	ActionURL string
}

// NotificationUsecase defines the interface for user notification use cases
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.UserNotification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// Notify persists the notification; push delivery failures are logged, not returned.
	Notify(ctx context.Context, userID uuid.UUID, input *NotifyInput) (*entity.UserNotification, error)
}
