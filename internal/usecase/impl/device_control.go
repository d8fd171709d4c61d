package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// controlChange is a requested change of a device's runtime state.
type controlChange struct {
	State      *entity.ControlState
	PowerLevel *int
}

// controlApplier persists control changes and forwards them to the device.
// It is shared by manual control updates and automation actions.
type controlApplier struct {
	txManager repository.TransactionManager
	commander service.DeviceCommander
	logger    *slog.Logger
	now       func() time.Time
}

func validateControlChange(control *entity.DeviceControl, change controlChange) error {
	if change.State != nil {
		if !change.State.IsValid() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown state %q", *change.State)
		}
		if !control.CanTurnOnOff {
			return errors.Wrap(domainerrors.ErrCapabilityNotSupported, "device cannot be switched on or off")
		}
	}
	if change.PowerLevel != nil {
		if *change.PowerLevel < 0 || *change.PowerLevel > 100 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "power level must be between 0 and 100")
		}
		if !control.CanSetPowerLevel {
			return errors.Wrap(domainerrors.ErrCapabilityNotSupported, "device does not support power levels")
		}
	}

	return nil
}

// apply validates the change, updates the control record and device status in
// one transaction, then sends the command. A failed send is logged only; the
// command is retained by the broker on the next successful change.
func (a *controlApplier) apply(ctx context.Context, device *entity.Device, control *entity.DeviceControl, change controlChange) (*entity.DeviceControl, error) {
	if err := validateControlChange(control, change); err != nil {
		return nil, err
	}

	now := a.now()
	updated := *control
	if change.State != nil {
		updated.CurrentState = *change.State
	}
	if change.PowerLevel != nil {
		updated.CurrentPowerLevel = *change.PowerLevel
	}
	updated.LastCommandAt = &now

	err := a.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceControlRepo().Update(ctx, &updated); err != nil {
			return errors.Wrap(err, "failed to update device control")
		}

		status := entity.DeviceStatusInactive
		if updated.CurrentState == entity.ControlStateOn {
			status = entity.DeviceStatusActive
		}
		if device.Status == status {
			return nil
		}

		device.Status = status
		if err := repoFactory.DeviceRepo().UpdateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to update device status")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute device control transaction")
	}

	cmd := &service.DeviceCommand{
		DeviceID:   device.ID,
		State:      string(updated.CurrentState),
		PowerLevel: updated.CurrentPowerLevel,
		IssuedAt:   now,
	}
	if err := a.commander.SendCommand(ctx, cmd); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to send device command",
			slog.Any("deviceID", device.ID), slog.Any("error", err))
	}

	return &updated, nil
}

// loadOwnedDevice returns the device if userID owns it. A foreign device is
// reported as not found for reads and as forbidden for mutations.
func loadOwnedDevice(ctx context.Context, repo repository.DeviceRepository, userID, deviceID uuid.UUID, mutation bool) (*entity.Device, error) {
	device, err := repo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if !device.IsOwnedBy(userID) {
		if mutation {
			return nil, errors.Wrap(domainerrors.ErrDeviceOwnershipViolation, deviceID.String())
		}

		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
	}

	return device, nil
}

func loadDeviceControl(ctx context.Context, repo repository.DeviceControlRepository, deviceID uuid.UUID) (*entity.DeviceControl, error) {
	control, err := repo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceControlNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceControlNotFound, deviceID.String())
		}

		return nil, errors.Wrap(err, "failed to find device control")
	}

	return control, nil
}
