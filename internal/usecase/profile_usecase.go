package usecase

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the user's profile, creating it with defaults when missing.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	UpdateNotificationPreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) (*entity.Profile, error)
}

// UpdateProfileInput is a patch; nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName   *string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	Pincode    *string
	EnergyRate *float64
	Currency   *string
	Theme      *entity.Theme
	Language   *string
	PushToken  *string
}
