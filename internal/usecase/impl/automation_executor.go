package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultOptimizeLevel      = 70
	defaultAutomationTitle    = "Automation"
	automationLogsActionURL   = "/automation"
	stateToggle               = "toggle"
	paramState                = "state"
	paramPowerLevel           = "power_level"
	paramTargetLevel          = "target_level"
	paramTitle                = "title"
	paramMessage              = "message"
	paramNotificationType     = "type"
	detailPreviousPowerLevel  = "previous_power_level"
	detailNotificationCreated = "notification_id"
)

// ExecuteDeviceAction runs one action and always appends an AutomationLog,
// whether the action succeeded or not. The action error is returned with the log.
func (srv *automationService) ExecuteDeviceAction(ctx context.Context, userID uuid.UUID, input *usecase.ExecuteActionInput) (*entity.AutomationLog, error) {
	start := srv.now()

	deviceID := input.DeviceID
	if deviceID == uuid.Nil && input.Action.DeviceID != nil {
		deviceID = *input.Action.DeviceID
	}

	entry := &entity.AutomationLog{
		UserID:     userID,
		RuleID:     input.RuleID,
		ActionType: input.Action.Type,
		ExecutedAt: start,
	}
	if deviceID != uuid.Nil {
		entry.DeviceID = &deviceID
	}

	details, actionErr := srv.runAction(ctx, userID, deviceID, input.Action)

	entry.Details = details
	entry.ExecutionTimeMs = srv.now().Sub(start).Milliseconds()
	if actionErr != nil {
		entry.Status = entity.LogStatusFailed
		entry.Message = actionErr.Error()
	} else {
		entry.Status = entity.LogStatusSuccess
		entry.Message = fmt.Sprintf("%s action completed", input.Action.Type)
	}

	if err := srv.logRepo.CreateLog(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to write automation log", slog.Any("userID", userID), slog.Any("error", err))
		if actionErr == nil {
			return nil, errors.Wrap(err, "failed to write automation log")
		}
	}

	if actionErr != nil {
		srv.log(ctx).Warn("Automation action failed",
			slog.String("type", string(input.Action.Type)), slog.Any("deviceID", deviceID), slog.Any("error", actionErr))

		return entry, actionErr
	}

	srv.log(ctx).Info("Automation action executed",
		slog.String("type", string(input.Action.Type)), slog.Any("deviceID", deviceID), slog.Int64("ms", entry.ExecutionTimeMs))

	return entry, nil
}

func (srv *automationService) runAction(ctx context.Context, userID, deviceID uuid.UUID, action entity.RuleAction) (map[string]any, error) {
	switch action.Type {
	case entity.ActionTypeDeviceControl:
		return srv.runDeviceControl(ctx, userID, deviceID, action.Parameters)
	case entity.ActionTypeNotification:
		return srv.runNotification(ctx, userID, action.Parameters)
	case entity.ActionTypeOptimize:
		return srv.runOptimize(ctx, userID, deviceID, action.Parameters)
	default:
		return map[string]any{}, errors.Wrapf(domainerrors.ErrUnknownActionType, "%q", action.Type)
	}
}

func (srv *automationService) loadControlTarget(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, *entity.DeviceControl, error) {
	if deviceID == uuid.Nil {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidActionParameters, "device_id is required")
	}

	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID, true)
	if err != nil {
		return nil, nil, err
	}

	control, err := loadDeviceControl(ctx, srv.controlRepo, deviceID)
	if err != nil {
		return nil, nil, err
	}

	return device, control, nil
}

// runDeviceControl handles state "on", "off" or "toggle" and an optional power_level.
func (srv *automationService) runDeviceControl(ctx context.Context, userID, deviceID uuid.UUID, params map[string]any) (map[string]any, error) {
	device, control, err := srv.loadControlTarget(ctx, userID, deviceID)
	if err != nil {
		return map[string]any{}, err
	}

	var change controlChange
	if raw, ok := params[paramState]; ok {
		s, _ := raw.(string)
		state := entity.ControlState(s)
		if s == stateToggle {
			state = entity.ControlStateOn
			if control.CurrentState == entity.ControlStateOn {
				state = entity.ControlStateOff
			}
		}
		if !state.IsValid() {
			return map[string]any{}, errors.Wrapf(domainerrors.ErrInvalidActionParameters, "state %v", raw)
		}
		change.State = &state
	}

	level, ok, err := intParam(params, paramPowerLevel)
	if err != nil {
		return map[string]any{}, err
	}
	if ok {
		change.PowerLevel = &level
	}

	if change.State == nil && change.PowerLevel == nil {
		return map[string]any{}, errors.Wrap(domainerrors.ErrInvalidActionParameters, "state or power_level is required")
	}

	updated, err := srv.control.apply(ctx, device, control, change)
	if err != nil {
		return map[string]any{}, err
	}

	return map[string]any{
		paramState:      string(updated.CurrentState),
		paramPowerLevel: updated.CurrentPowerLevel,
	}, nil
}

// runNotification creates a user notification from the title and message parameters.
func (srv *automationService) runNotification(ctx context.Context, userID uuid.UUID, params map[string]any) (map[string]any, error) {
	title, _ := params[paramTitle].(string)
	if title == "" {
		title = defaultAutomationTitle
	}
	message, _ := params[paramMessage].(string)
	notificationType, _ := params[paramNotificationType].(string)

	n, err := srv.notifications.Notify(ctx, userID, &usecase.NotifyInput{
		Title:     title,
		Message:   message,
		Type:      entity.NotificationType(notificationType),
		Category:  CategoryAutomation,
		ActionURL: automationLogsActionURL,
	})
	if err != nil {
		return map[string]any{}, err
	}

	return map[string]any{detailNotificationCreated: n.ID.String()}, nil
}

// runOptimize lowers the power level to target_level. A device already at or
// below the target is left alone.
func (srv *automationService) runOptimize(ctx context.Context, userID, deviceID uuid.UUID, params map[string]any) (map[string]any, error) {
	device, control, err := srv.loadControlTarget(ctx, userID, deviceID)
	if err != nil {
		return map[string]any{}, err
	}
	if !control.CanSetPowerLevel {
		return map[string]any{}, errors.Wrap(domainerrors.ErrCapabilityNotSupported, "device does not support power levels")
	}

	target, ok, err := intParam(params, paramTargetLevel)
	if err != nil {
		return map[string]any{}, err
	}
	if !ok {
		target = defaultOptimizeLevel
	}

	details := map[string]any{
		detailPreviousPowerLevel: control.CurrentPowerLevel,
		paramTargetLevel:         target,
	}
	if control.CurrentPowerLevel <= target {
		details[paramPowerLevel] = control.CurrentPowerLevel

		return details, nil
	}

	updated, err := srv.control.apply(ctx, device, control, controlChange{PowerLevel: &target})
	if err != nil {
		return details, err
	}
	details[paramPowerLevel] = updated.CurrentPowerLevel

	return details, nil
}

// intParam reads an integer parameter decoded from JSON.
func intParam(params map[string]any, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, errors.Wrapf(domainerrors.ErrInvalidActionParameters, "%s must be a number", key)
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false, errors.Wrapf(domainerrors.ErrInvalidActionParameters, "%s must be a number", key)
		}
		v = f
	default:
		return 0, false, errors.Wrapf(domainerrors.ErrInvalidActionParameters, "%s must be a number", key)
	}

	if v != math.Trunc(v) || v < 0 || v > 100 {
		return 0, false, errors.Wrapf(domainerrors.ErrInvalidActionParameters, "%s must be a whole number between 0 and 100", key)
	}

	return int(v), true, nil
}
