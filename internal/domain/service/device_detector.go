package service

import (
	"context"

	"urjabandhu/internal/domain/entity"
)

// DetectionRequest is the payload sent to the device recognition function.
type DetectionRequest struct {
	UserID      string `json:"user_id"`
	PhotoKey    string `json:"photo_key"`
	ContentType string `json:"content_type"`
}

// DeviceDetector recognises appliances in stored photos.
type DeviceDetector interface {
	Detect(ctx context.Context, req *DetectionRequest) (*entity.DetectionResult, error)

	// Enabled reports whether a detection backend is configured.
	Enabled() bool
}
