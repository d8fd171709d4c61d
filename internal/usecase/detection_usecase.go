package usecase

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// DetectDeviceInput is an uploaded appliance photo.
type DetectDeviceInput struct {
	Photo       []byte
	ContentType string
}

// DetectionUsecase stores a photo and asks the recognition function what
// appliance it shows.
type DetectionUsecase interface {
	DetectDevice(ctx context.Context, userID uuid.UUID, input *DetectDeviceInput) (*entity.DetectionResult, error)
}
