package postgres

import (
	"context"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the domain.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// ListDevices returns the user's devices, newest first, optionally filtered by status and type.
func (repo *deviceRepository) ListDevices(ctx context.Context, userID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var rows []model.DeviceModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return []*entity.Device{}, domainerrors.NewDatabaseExecuteError(err, "failed to list devices")
	}

	return toSlice(rows, toDeviceDomain), nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)
	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return mapDeviceWriteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// UpdateDevice overwrites the mutable columns of a device.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	result := updateColumns(ctx, repo.db, deviceM)
	if result.Error != nil {
		return mapDeviceWriteError(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// DeleteDevice removes a device; its control record and schedules cascade.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeviceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func mapDeviceWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("device value out of range: " + constraintName(err))
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// deviceControlRepository implements the domain.DeviceControlRepository interface.
type deviceControlRepository struct {
	db *gorm.DB
}

// NewDeviceControlRepository is the constructor for deviceControlRepository.
func NewDeviceControlRepository(db *gorm.DB) repository.DeviceControlRepository {
	return &deviceControlRepository{db: db}
}

func (repo *deviceControlRepository) FindByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceControl, error) {
	var controlM model.DeviceControlModel
	if err := repo.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&controlM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceControlNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device control")
	}

	return toDeviceControlDomain(&controlM), nil
}

func (repo *deviceControlRepository) Create(ctx context.Context, control *entity.DeviceControl) error {
	controlM := fromDeviceControlDomain(control)
	if err := repo.db.WithContext(ctx).Create(controlM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("device already has a control record")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("invalid device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device control")
	}

	control.ID = controlM.ID
	control.CreatedAt = controlM.CreatedAt
	control.UpdatedAt = controlM.UpdatedAt

	return nil
}

func (repo *deviceControlRepository) Update(ctx context.Context, control *entity.DeviceControl) error {
	controlM := fromDeviceControlDomain(control)

	result := updateColumns(ctx, repo.db, controlM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("power level must be between 0 and 100")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device control")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceControlNotFound
	}

	control.UpdatedAt = controlM.UpdatedAt

	return nil
}

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Type:               entity.DeviceType(data.Type),
		Brand:              data.Brand,
		Model:              data.Model,
		PowerRating:        data.PowerRating,
		Status:             entity.DeviceStatus(data.Status),
		Location:           data.Location,
		EfficiencyScore:    data.EfficiencyScore,
		CurrentConsumption: data.CurrentConsumption,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Type:               string(data.Type),
		Brand:              data.Brand,
		Model:              data.Model,
		PowerRating:        data.PowerRating,
		Status:             string(data.Status),
		Location:           data.Location,
		EfficiencyScore:    data.EfficiencyScore,
		CurrentConsumption: data.CurrentConsumption,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toDeviceControlDomain(data *model.DeviceControlModel) *entity.DeviceControl {
	return &entity.DeviceControl{
		ID:                data.ID,
		DeviceID:          data.DeviceID,
		UserID:            data.UserID,
		CanTurnOnOff:      data.CanTurnOnOff,
		CanSetPowerLevel:  data.CanSetPowerLevel,
		CanSchedule:       data.CanSchedule,
		CurrentState:      entity.ControlState(data.CurrentState),
		CurrentPowerLevel: data.CurrentPowerLevel,
		LastCommandAt:     data.LastCommandAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromDeviceControlDomain(data *entity.DeviceControl) *model.DeviceControlModel {
	return &model.DeviceControlModel{
		ID:                data.ID,
		DeviceID:          data.DeviceID,
		UserID:            data.UserID,
		CanTurnOnOff:      data.CanTurnOnOff,
		CanSetPowerLevel:  data.CanSetPowerLevel,
		CanSchedule:       data.CanSchedule,
		CurrentState:      string(data.CurrentState),
		CurrentPowerLevel: data.CurrentPowerLevel,
		LastCommandAt:     data.LastCommandAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
