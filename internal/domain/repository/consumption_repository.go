package repository

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsumptionRepository persists metered readings. Records are append-only.
type ConsumptionRepository interface {
	// ListConsumption returns readings in the filter window ordered by recorded_at ASC.
	ListConsumption(ctx context.Context, userID uuid.UUID, filter entity.ConsumptionFilter) ([]*entity.ConsumptionRecord, error)
	CreateConsumption(ctx context.Context, record *entity.ConsumptionRecord) error
}
