package service

import (
	"context"

	"urjabandhu/internal/domain/entity"
)

// AlertNotifier fans urgent energy alerts out to an external topic.
type AlertNotifier interface {
	PublishAlert(ctx context.Context, alert *entity.EnergyAlert) error
}
