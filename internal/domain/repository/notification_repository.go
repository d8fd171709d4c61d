package repository

import (
	"context"
	"errors"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists in-app user notifications.
type NotificationRepository interface {
	// ListNotifications returns the newest notifications first.
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.UserNotification, error)
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.UserNotification, error)
	CreateNotification(ctx context.Context, notification *entity.UserNotification) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
