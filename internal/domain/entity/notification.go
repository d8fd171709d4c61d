package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType drives the icon and colour of a user-facing notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeAlert   NotificationType = "alert"
	NotificationTypeSuccess NotificationType = "success"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeAlert, NotificationTypeSuccess:
		return true
	default:
		return false
	}
}

// UserNotification is an append-only user-facing message.
// Only the read flag changes after creation.
type UserNotification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Category  string // e.g. "automation", "alert", "billing"
	IsRead    bool
	ActionURL string
	CreatedAt time.Time
}
