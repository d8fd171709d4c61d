package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/schedule"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type automationService struct {
	txManager     repository.TransactionManager
	ruleRepo      repository.AutomationRuleRepository
	scheduleRepo  repository.DeviceScheduleRepository
	logRepo       repository.AutomationLogRepository
	deviceRepo    repository.DeviceRepository
	controlRepo   repository.DeviceControlRepository
	publisher     service.EventPublisher
	notifications usecase.NotificationUsecase
	control       *controlApplier
	logger        *slog.Logger
	now           func() time.Time
}

// AutomationServiceParams holds dependencies for AutomationService.
type AutomationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	RuleRepo      repository.AutomationRuleRepository
	ScheduleRepo  repository.DeviceScheduleRepository
	LogRepo       repository.AutomationLogRepository
	DeviceRepo    repository.DeviceRepository
	ControlRepo   repository.DeviceControlRepository
	Publisher     service.EventPublisher
	Commander     service.DeviceCommander
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewAutomationService creates the automation service.
func NewAutomationService(params AutomationServiceParams) usecase.AutomationUsecase {
	return &automationService{
		txManager:     params.TxManager,
		ruleRepo:      params.RuleRepo,
		scheduleRepo:  params.ScheduleRepo,
		logRepo:       params.LogRepo,
		deviceRepo:    params.DeviceRepo,
		controlRepo:   params.ControlRepo,
		publisher:     params.Publisher,
		notifications: params.Notifications,
		control: &controlApplier{
			txManager: params.TxManager,
			commander: params.Commander,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *automationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Rules ---

func (srv *automationService) ListRules(ctx context.Context, userID uuid.UUID) ([]*entity.AutomationRule, error) {
	rules, err := srv.ruleRepo.ListRules(ctx, userID)
	if err != nil {
		return []*entity.AutomationRule{}, errors.Wrap(err, "failed to list rules")
	}

	return rules, nil
}

func (srv *automationService) CreateRule(ctx context.Context, userID uuid.UUID, input *usecase.RuleInput) (*entity.AutomationRule, error) {
	rule := &entity.AutomationRule{UserID: userID}
	applyRuleInput(rule, input)
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	if err := srv.ruleRepo.CreateRule(ctx, rule); err != nil {
		return nil, errors.Wrap(err, "failed to create rule")
	}

	srv.log(ctx).Info("Automation rule created", slog.Any("ruleID", rule.ID), slog.Int("actions", len(rule.Actions)))

	return rule, nil
}

func (srv *automationService) UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, input *usecase.RuleInput) (*entity.AutomationRule, error) {
	rule, err := srv.loadRule(ctx, userID, ruleID)
	if err != nil {
		return nil, err
	}

	applyRuleInput(rule, input)
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	if err := srv.ruleRepo.UpdateRule(ctx, rule); err != nil {
		return nil, mapNotFound(err, repository.ErrRuleNotFound, domainerrors.ErrRuleNotFound, "failed to update rule")
	}

	return rule, nil
}

func (srv *automationService) DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	if _, err := srv.loadRule(ctx, userID, ruleID); err != nil {
		return err
	}

	if err := srv.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		return mapNotFound(err, repository.ErrRuleNotFound, domainerrors.ErrRuleNotFound, "failed to delete rule")
	}

	return nil
}

// ToggleRule flips IsEnabled.
func (srv *automationService) ToggleRule(ctx context.Context, userID, ruleID uuid.UUID) (*entity.AutomationRule, error) {
	rule, err := srv.loadRule(ctx, userID, ruleID)
	if err != nil {
		return nil, err
	}

	rule.IsEnabled = !rule.IsEnabled
	if err := srv.ruleRepo.UpdateRule(ctx, rule); err != nil {
		return nil, mapNotFound(err, repository.ErrRuleNotFound, domainerrors.ErrRuleNotFound, "failed to toggle rule")
	}

	return rule, nil
}

// TriggerRule runs a rule by hand: one event per action is published for the
// worker, then the execution counter is bumped. Conditions are not evaluated.
// When a later action fails to publish, the events already sent are still
// counted as one execution and returned together with the error.
func (srv *automationService) TriggerRule(ctx context.Context, userID, ruleID uuid.UUID) (*usecase.TriggerRuleOutput, error) {
	rule, err := srv.loadRule(ctx, userID, ruleID)
	if err != nil {
		return nil, err
	}
	if len(rule.Actions) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rule has no actions")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	eventIDs := make([]string, 0, len(rule.Actions))
	for i, action := range rule.Actions {
		event := &service.AutomationEvent{
			RequestID: requestID,
			EventID:   uuid.NewString(),
			UserID:    userID.String(),
			RuleID:    rule.ID.String(),
			Action:    action,
		}
		if action.DeviceID != nil {
			event.DeviceID = action.DeviceID.String()
		}

		if err := srv.publisher.PublishAutomationEvent(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish automation event",
				slog.Any("ruleID", rule.ID), slog.Int("action", i), slog.Int("published", len(eventIDs)), slog.Any("error", err))
			pubErr := errors.Wrapf(err, "failed to publish automation event %d of %d", i+1, len(rule.Actions))
			if len(eventIDs) == 0 {
				return nil, pubErr
			}

			output, recErr := srv.recordTrigger(ctx, rule, eventIDs)
			if recErr != nil {
				srv.log(ctx).Error("Failed to record partial rule execution", slog.Any("ruleID", rule.ID), slog.Any("error", recErr))
			}

			return output, pubErr
		}
		eventIDs = append(eventIDs, event.EventID)
	}

	output, err := srv.recordTrigger(ctx, rule, eventIDs)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Automation rule triggered", slog.Any("ruleID", rule.ID), slog.Int("events", len(eventIDs)))

	return output, nil
}

func (srv *automationService) recordTrigger(ctx context.Context, rule *entity.AutomationRule, eventIDs []string) (*usecase.TriggerRuleOutput, error) {
	executedAt := srv.now()
	if err := srv.ruleRepo.RecordExecution(ctx, rule.ID, executedAt); err != nil {
		return &usecase.TriggerRuleOutput{Rule: rule, EventIDs: eventIDs},
			mapNotFound(err, repository.ErrRuleNotFound, domainerrors.ErrRuleNotFound, "failed to record rule execution")
	}
	rule.ExecutionCount++
	rule.LastExecutedAt = &executedAt

	return &usecase.TriggerRuleOutput{Rule: rule, EventIDs: eventIDs}, nil
}

func (srv *automationService) loadRule(ctx context.Context, userID, ruleID uuid.UUID) (*entity.AutomationRule, error) {
	rule, err := srv.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrRuleNotFound, domainerrors.ErrRuleNotFound, "failed to find rule")
	}
	if rule.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrRuleOwnershipViolation, ruleID.String())
	}

	return rule, nil
}

func applyRuleInput(rule *entity.AutomationRule, in *usecase.RuleInput) {
	rule.Name = in.Name
	rule.Description = in.Description
	rule.Conditions = in.Conditions
	rule.Actions = in.Actions
	rule.IsEnabled = in.IsEnabled
	rule.Priority = in.Priority
	rule.TimeStart = in.TimeStart
	rule.TimeEnd = in.TimeEnd
	rule.DaysOfWeek = in.DaysOfWeek
	if rule.Conditions == nil {
		rule.Conditions = []entity.RuleCondition{}
	}
	if rule.Actions == nil {
		rule.Actions = []entity.RuleAction{}
	}
}

func validateRule(rule *entity.AutomationRule) error {
	if rule.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "rule name is required")
	}
	for _, a := range rule.Actions {
		if !a.Type.IsValid() {
			return errors.Wrapf(domainerrors.ErrUnknownActionType, "%q", a.Type)
		}
	}
	for _, clock := range []string{rule.TimeStart, rule.TimeEnd} {
		if clock == "" {
			continue
		}
		if _, _, err := schedule.ParseClock(clock); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}
	}
	if err := schedule.ValidateDays(rule.DaysOfWeek); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}

// --- Schedules ---

func (srv *automationService) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSchedule, error) {
	schedules, err := srv.scheduleRepo.ListSchedules(ctx, userID)
	if err != nil {
		return []*entity.DeviceSchedule{}, errors.Wrap(err, "failed to list schedules")
	}

	return schedules, nil
}

// CreateSchedule stores a schedule with its next due time computed.
func (srv *automationService) CreateSchedule(ctx context.Context, userID uuid.UUID, input *usecase.ScheduleInput) (*entity.DeviceSchedule, error) {
	if _, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, input.DeviceID, true); err != nil {
		return nil, err
	}

	s := &entity.DeviceSchedule{UserID: userID}
	applyScheduleInput(s, input)
	if err := srv.computeNext(s); err != nil {
		return nil, err
	}

	if err := srv.scheduleRepo.CreateSchedule(ctx, s); err != nil {
		return nil, mapScheduleError(err, "failed to create schedule")
	}

	return s, nil
}

// UpdateSchedule replaces the schedule definition and recomputes its next due time.
func (srv *automationService) UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input *usecase.ScheduleInput) (*entity.DeviceSchedule, error) {
	s, err := srv.loadSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	if input.DeviceID != s.DeviceID {
		if _, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, input.DeviceID, true); err != nil {
			return nil, err
		}
	}

	applyScheduleInput(s, input)
	if err := srv.computeNext(s); err != nil {
		return nil, err
	}

	if err := srv.scheduleRepo.UpdateSchedule(ctx, s); err != nil {
		return nil, mapScheduleError(err, "failed to update schedule")
	}

	return s, nil
}

func (srv *automationService) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	if _, err := srv.loadSchedule(ctx, userID, scheduleID); err != nil {
		return err
	}

	if err := srv.scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		return mapScheduleError(err, "failed to delete schedule")
	}

	return nil
}

func (srv *automationService) computeNext(s *entity.DeviceSchedule) error {
	next, err := schedule.ComputeNextExecution(s, srv.now())
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidSchedule, err.Error())
	}
	s.NextExecutionAt = next

	return nil
}

func (srv *automationService) loadSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*entity.DeviceSchedule, error) {
	s, err := srv.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, mapScheduleError(err, "failed to find schedule")
	}
	if s.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrScheduleOwnershipViolation, scheduleID.String())
	}

	return s, nil
}

func applyScheduleInput(s *entity.DeviceSchedule, in *usecase.ScheduleInput) {
	s.DeviceID = in.DeviceID
	s.Name = in.Name
	s.Action = in.Action
	s.PowerLevel = in.PowerLevel
	s.ScheduleType = in.ScheduleType
	s.ScheduledTime = in.ScheduledTime
	s.DaysOfWeek = in.DaysOfWeek
	s.RunAt = in.RunAt
	s.IsEnabled = in.IsEnabled
}

func mapScheduleError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrScheduleNotFound):
		return errors.Wrap(domainerrors.ErrScheduleNotFound, msg)
	case errors.Is(err, repository.ErrDeviceNotFound):
		return errors.Wrap(domainerrors.ErrDeviceNotFound, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// --- Logs ---

func (srv *automationService) ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AutomationLog, error) {
	logs, err := srv.logRepo.ListLogs(ctx, userID, limit)
	if err != nil {
		return []*entity.AutomationLog{}, errors.Wrap(err, "failed to list automation logs")
	}

	return logs, nil
}
