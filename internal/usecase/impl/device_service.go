package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager   repository.TransactionManager
	deviceRepo  repository.DeviceRepository
	controlRepo repository.DeviceControlRepository
	control     *controlApplier
	logger      *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService.
type DeviceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DeviceRepo  repository.DeviceRepository
	ControlRepo repository.DeviceControlRepository
	Commander   service.DeviceCommander
	Logger      *slog.Logger
}

// NewDeviceService creates a new device service.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:   params.TxManager,
		deviceRepo:  params.DeviceRepo,
		controlRepo: params.ControlRepo,
		control: &controlApplier{
			txManager: params.TxManager,
			commander: params.Commander,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices returns the user's devices, newest first.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.ListDevices(ctx, userID, filter)
	if err != nil {
		return []*entity.Device{}, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// GetDevice returns one of the user's devices.
func (srv *deviceService) GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	return loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, false)
}

// CreateDevice registers a device together with its default control record.
func (srv *deviceService) CreateDevice(ctx context.Context, userID uuid.UUID, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	powerRating, err := parsePowerRating(input.PowerRating)
	if err != nil {
		return nil, err
	}

	device := &entity.Device{
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Type:            input.Type,
		Brand:           input.Brand,
		Model:           input.Model,
		PowerRating:     powerRating,
		Status:          input.Status,
		Location:        input.Location,
		EfficiencyScore: entity.DefaultEfficiencyScore,
	}
	if device.Type == "" {
		device.Type = entity.DeviceTypeOther
	}
	if device.Status == "" {
		device.Status = entity.DeviceStatusActive
	}
	if input.EfficiencyScore != nil {
		device.EfficiencyScore = *input.EfficiencyScore
	}
	if err := validateDevice(device); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceRepo().CreateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to create device")
		}

		if err := repoFactory.DeviceControlRepo().Create(ctx, entity.NewDefaultDeviceControl(device)); err != nil {
			return errors.Wrap(err, "failed to create device control")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create device", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create device transaction")
	}

	srv.log(ctx).Info("Device created", slog.Any("deviceID", device.ID), slog.String("type", string(device.Type)))

	return device, nil
}

// UpdateDevice applies a patch to one of the user's devices.
func (srv *deviceService) UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, true)
	if err != nil {
		return nil, err
	}

	if input.PowerRating != nil {
		rating, err := parsePowerRating(*input.PowerRating)
		if err != nil {
			return nil, err
		}
		device.PowerRating = rating
	}
	setIfPresent(&device.Name, input.Name)
	setIfPresent(&device.Type, input.Type)
	setIfPresent(&device.Brand, input.Brand)
	setIfPresent(&device.Model, input.Model)
	setIfPresent(&device.Status, input.Status)
	setIfPresent(&device.Location, input.Location)
	setIfPresent(&device.EfficiencyScore, input.EfficiencyScore)
	setIfPresent(&device.CurrentConsumption, input.CurrentConsumption)

	if err := validateDevice(device); err != nil {
		return nil, err
	}

	if err := srv.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}

	return device, nil
}

// DeleteDevice removes the device; its control record and schedules cascade.
func (srv *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, true); err != nil {
		return err
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
		}

		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device deleted", slog.Any("deviceID", deviceID))

	return nil
}

// GetDeviceControl returns the control record of one of the user's devices.
func (srv *deviceService) GetDeviceControl(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceControl, error) {
	if _, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, false); err != nil {
		return nil, err
	}

	return loadDeviceControl(ctx, srv.controlRepo, deviceID)
}

// UpdateDeviceControl switches the device and sends the new state to it.
func (srv *deviceService) UpdateDeviceControl(ctx context.Context, userID, deviceID uuid.UUID, input *usecase.UpdateDeviceControlInput) (*entity.DeviceControl, error) {
	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, true)
	if err != nil {
		return nil, err
	}

	control, err := loadDeviceControl(ctx, srv.controlRepo, deviceID)
	if err != nil {
		return nil, err
	}

	return srv.control.apply(ctx, device, control, controlChange{State: input.State, PowerLevel: input.PowerLevel})
}

// parsePowerRating accepts the rating in watts as entered in forms. Only
// finite non-negative values are valid.
// An empty value means unknown and is stored as 0.
func parsePowerRating(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil || rating < 0 || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, errors.Wrapf(domainerrors.ErrInvalidPowerRating, "power rating %q", raw)
	}

	return rating, nil
}

func validateDevice(d *entity.Device) error {
	switch {
	case d.Name == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "device name is required")
	case !d.Type.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown device type %q", d.Type)
	case !d.Status.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown device status %q", d.Status)
	case d.EfficiencyScore < 0 || d.EfficiencyScore > entity.MaxEfficiencyScore:
		return errors.Wrap(domainerrors.ErrValidationFailed, "efficiency score must be between 0 and 100")
	case d.CurrentConsumption < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "current consumption must not be negative")
	}

	return nil
}
