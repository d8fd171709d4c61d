package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken reports that the device token is unregistered or malformed
// and should be removed from the profile.
var ErrInvalidPushToken = errors.New("push token is invalid")

// NotificationService delivers push notifications to a device token.
type NotificationService interface {
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
