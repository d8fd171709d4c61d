package postgres

import (
	"context"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consumptionRepository struct {
	db *gorm.DB
}

// NewConsumptionRepository is the constructor for consumptionRepository.
func NewConsumptionRepository(db *gorm.DB) repository.ConsumptionRepository {
	return &consumptionRepository{db: db}
}

// ListConsumption returns records in chronological order. Zero From/To leave that side open.
func (repo *consumptionRepository) ListConsumption(ctx context.Context, userID uuid.UUID, filter entity.ConsumptionFilter) ([]*entity.ConsumptionRecord, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.From.IsZero() {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("recorded_at <= ?", filter.To)
	}
	if filter.DeviceID != nil {
		query = query.Where("device_id = ?", *filter.DeviceID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.ConsumptionRecordModel
	if err := query.Order("recorded_at ASC").Find(&rows).Error; err != nil {
		return []*entity.ConsumptionRecord{}, domainerrors.NewDatabaseExecuteError(err, "failed to list consumption records")
	}

	return toSlice(rows, toConsumptionDomain), nil
}

func (repo *consumptionRepository) CreateConsumption(ctx context.Context, record *entity.ConsumptionRecord) error {
	recordM := fromConsumptionDomain(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("consumption must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consumption record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

func toConsumptionDomain(data *model.ConsumptionRecordModel) *entity.ConsumptionRecord {
	return &entity.ConsumptionRecord{
		ID:             data.ID,
		UserID:         data.UserID,
		DeviceID:       data.DeviceID,
		RecordedAt:     data.RecordedAt,
		ConsumptionKWh: data.ConsumptionKWh,
		Cost:           data.Cost,
		PeakDemandKW:   data.PeakDemandKW,
		CreatedAt:      data.CreatedAt,
	}
}

func fromConsumptionDomain(data *entity.ConsumptionRecord) *model.ConsumptionRecordModel {
	return &model.ConsumptionRecordModel{
		ID:             data.ID,
		UserID:         data.UserID,
		DeviceID:       data.DeviceID,
		RecordedAt:     data.RecordedAt,
		ConsumptionKWh: data.ConsumptionKWh,
		Cost:           data.Cost,
		PeakDemandKW:   data.PeakDemandKW,
		CreatedAt:      data.CreatedAt,
	}
}
