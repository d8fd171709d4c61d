package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockSvc "urjabandhu/internal/mocks/service"
	mockUsecase "urjabandhu/internal/mocks/usecase"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type automationServiceFixtures struct {
	service       usecase.AutomationUsecase
	txManager     *mockRepo.MockTransactionManager
	ruleRepo      *mockRepo.MockAutomationRuleRepository
	scheduleRepo  *mockRepo.MockDeviceScheduleRepository
	logRepo       *mockRepo.MockAutomationLogRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	controlRepo   *mockRepo.MockDeviceControlRepository
	publisher     *mockSvc.MockEventPublisher
	commander     *mockSvc.MockDeviceCommander
	notifications *mockUsecase.MockNotificationUsecase
	now           time.Time
}

func createTestAutomationService(t *testing.T) automationServiceFixtures {
	fx := automationServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		ruleRepo:      mockRepo.NewMockAutomationRuleRepository(t),
		scheduleRepo:  mockRepo.NewMockDeviceScheduleRepository(t),
		logRepo:       mockRepo.NewMockAutomationLogRepository(t),
		deviceRepo:    mockRepo.NewMockDeviceRepository(t),
		controlRepo:   mockRepo.NewMockDeviceControlRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		commander:     mockSvc.NewMockDeviceCommander(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		now:           time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), // Saturday
	}

	svc := NewAutomationService(AutomationServiceParams{
		TxManager:     fx.txManager,
		RuleRepo:      fx.ruleRepo,
		ScheduleRepo:  fx.scheduleRepo,
		LogRepo:       fx.logRepo,
		DeviceRepo:    fx.deviceRepo,
		ControlRepo:   fx.controlRepo,
		Publisher:     fx.publisher,
		Commander:     fx.commander,
		Notifications: fx.notifications,
		Logger:        newDiscardLogger(),
	})
	impl := svc.(*automationService)
	impl.now = fixedClock(fx.now)
	impl.control.now = fixedClock(fx.now)
	fx.service = svc

	return fx
}

func TestAutomationService_CreateRule_UnknownActionType(t *testing.T) {
	fx := createTestAutomationService(t)

	rule, err := fx.service.CreateRule(context.Background(), uuid.New(), &usecase.RuleInput{
		Name:    "Night mode",
		Actions: []entity.RuleAction{{Type: "teleport"}},
	})

	assert.Nil(t, rule)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownActionType)
}

func TestAutomationService_CreateRule_InvalidClock(t *testing.T) {
	fx := createTestAutomationService(t)

	_, err := fx.service.CreateRule(context.Background(), uuid.New(), &usecase.RuleInput{
		Name:      "Night mode",
		Actions:   []entity.RuleAction{{Type: entity.ActionTypeNotification}},
		TimeStart: "25:00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAutomationService_CreateRule_Success(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ruleRepo.EXPECT().CreateRule(ctx, mock.AnythingOfType("*entity.AutomationRule")).Return(nil)

	rule, err := fx.service.CreateRule(ctx, userID, &usecase.RuleInput{
		Name:       "Evening AC",
		Actions:    []entity.RuleAction{{Type: entity.ActionTypeOptimize}},
		IsEnabled:  true,
		TimeStart:  "18:00",
		TimeEnd:    "23:00",
		DaysOfWeek: []int{1, 2, 3, 4, 5},
	})

	require.NoError(t, err)
	assert.Equal(t, userID, rule.UserID)
	assert.NotNil(t, rule.Conditions)
	assert.True(t, rule.IsEnabled)
}

func TestAutomationService_ToggleRule_ForeignRule(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	ruleID := uuid.New()
	fx.ruleRepo.EXPECT().FindRuleByID(ctx, ruleID).Return(&entity.AutomationRule{ID: ruleID, UserID: uuid.New()}, nil)

	_, err := fx.service.ToggleRule(ctx, uuid.New(), ruleID)

	assert.ErrorIs(t, err, domainerrors.ErrRuleOwnershipViolation)
}

func TestAutomationService_ToggleRule_FlipsFlag(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	rule := &entity.AutomationRule{ID: uuid.New(), UserID: userID, IsEnabled: true}

	fx.ruleRepo.EXPECT().FindRuleByID(ctx, rule.ID).Return(rule, nil)
	fx.ruleRepo.EXPECT().UpdateRule(ctx, rule).Return(nil)

	toggled, err := fx.service.ToggleRule(ctx, userID, rule.ID)

	require.NoError(t, err)
	assert.False(t, toggled.IsEnabled)
}

func TestAutomationService_TriggerRule_PublishesOneEventPerAction(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	userID := uuid.New()
	deviceID := uuid.New()
	rule := &entity.AutomationRule{
		ID:     uuid.New(),
		UserID: userID,
		Actions: []entity.RuleAction{
			{Type: entity.ActionTypeDeviceControl, DeviceID: &deviceID, Parameters: map[string]any{"state": "off"}},
			{Type: entity.ActionTypeNotification, Parameters: map[string]any{"title": "Done"}},
		},
	}

	fx.ruleRepo.EXPECT().FindRuleByID(ctx, rule.ID).Return(rule, nil)

	var events []*service.AutomationEvent
	fx.publisher.EXPECT().
		PublishAutomationEvent(ctx, mock.AnythingOfType("*service.AutomationEvent")).
		Run(func(_ context.Context, event *service.AutomationEvent) {
			events = append(events, event)
		}).
		Return(nil).
		Times(2)
	fx.ruleRepo.EXPECT().RecordExecution(ctx, rule.ID, fx.now).Return(nil)

	output, err := fx.service.TriggerRule(ctx, userID, rule.ID)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Len(t, output.EventIDs, 2)
	assert.Equal(t, 1, output.Rule.ExecutionCount)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, deviceID.String(), events[0].DeviceID)
	assert.Empty(t, events[1].DeviceID)
	assert.Equal(t, rule.ID.String(), events[1].RuleID)
}

func TestAutomationService_TriggerRule_PublishFailure(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	rule := &entity.AutomationRule{
		ID:      uuid.New(),
		UserID:  userID,
		Actions: []entity.RuleAction{{Type: entity.ActionTypeNotification}},
	}

	fx.ruleRepo.EXPECT().FindRuleByID(ctx, rule.ID).Return(rule, nil)
	fx.publisher.EXPECT().PublishAutomationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	output, err := fx.service.TriggerRule(ctx, userID, rule.ID)

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestAutomationService_TriggerRule_PartialPublishStillCounts(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	rule := &entity.AutomationRule{
		ID:     uuid.New(),
		UserID: userID,
		Actions: []entity.RuleAction{
			{Type: entity.ActionTypeNotification, Parameters: map[string]any{"title": "First"}},
			{Type: entity.ActionTypeNotification, Parameters: map[string]any{"title": "Second"}},
			{Type: entity.ActionTypeNotification, Parameters: map[string]any{"title": "Third"}},
		},
	}

	fx.ruleRepo.EXPECT().FindRuleByID(ctx, rule.ID).Return(rule, nil)

	var sent []string
	fx.publisher.EXPECT().
		PublishAutomationEvent(ctx, mock.AnythingOfType("*service.AutomationEvent")).
		Run(func(_ context.Context, event *service.AutomationEvent) {
			sent = append(sent, event.EventID)
		}).
		Return(nil).
		Once()
	fx.publisher.EXPECT().
		PublishAutomationEvent(ctx, mock.AnythingOfType("*service.AutomationEvent")).
		Return(errors.New("broker down")).
		Once()
	fx.ruleRepo.EXPECT().RecordExecution(ctx, rule.ID, fx.now).Return(nil)

	output, err := fx.service.TriggerRule(ctx, userID, rule.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	require.NotNil(t, output)
	assert.Equal(t, sent, output.EventIDs)
	assert.Equal(t, 1, output.Rule.ExecutionCount)
	require.NotNil(t, output.Rule.LastExecutedAt)
	assert.Equal(t, fx.now, *output.Rule.LastExecutedAt)
}

func TestAutomationService_ListRules_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.ruleRepo.EXPECT().ListRules(ctx, userID).Return(nil, errors.New("db error"))

	rules, err := fx.service.ListRules(ctx, userID)

	require.Error(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
}

func TestAutomationService_ListSchedules_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.scheduleRepo.EXPECT().ListSchedules(ctx, userID).Return(nil, errors.New("db error"))

	schedules, err := fx.service.ListSchedules(ctx, userID)

	require.Error(t, err)
	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}

func TestAutomationService_CreateSchedule_ComputesNextExecution(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.scheduleRepo.EXPECT().CreateSchedule(ctx, mock.AnythingOfType("*entity.DeviceSchedule")).Return(nil)

	s, err := fx.service.CreateSchedule(ctx, userID, &usecase.ScheduleInput{
		DeviceID:      deviceID,
		Name:          "Geyser",
		Action:        entity.ScheduleActionTurnOn,
		ScheduleType:  entity.ScheduleTypeDaily,
		ScheduledTime: "06:30",
		IsEnabled:     true,
	})

	require.NoError(t, err)
	require.NotNil(t, s.NextExecutionAt)
	assert.Equal(t, time.Date(2024, 6, 2, 6, 30, 0, 0, time.UTC), *s.NextExecutionAt)
}

func TestAutomationService_CreateSchedule_SetPowerWithoutLevel(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)

	_, err := fx.service.CreateSchedule(ctx, userID, &usecase.ScheduleInput{
		DeviceID:      deviceID,
		Name:          "Dim",
		Action:        entity.ScheduleActionSetPower,
		ScheduleType:  entity.ScheduleTypeDaily,
		ScheduledTime: "22:00",
		IsEnabled:     true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSchedule)
}

func TestAutomationService_ListLogs_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.logRepo.EXPECT().ListLogs(ctx, userID, 50).Return(nil, errors.New("db error"))

	logs, err := fx.service.ListLogs(ctx, userID, 50)

	require.Error(t, err)
	assert.NotNil(t, logs)
}

func TestAutomationService_ExecuteDeviceAction_UnknownTypeWritesFailedLog(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.logRepo.EXPECT().
		CreateLog(ctx, mock.MatchedBy(func(l *entity.AutomationLog) bool {
			return l.Status == entity.LogStatusFailed && l.UserID == userID && l.Details != nil
		})).
		Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		Action: entity.RuleAction{Type: "teleport"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownActionType)
	require.NotNil(t, entry)
	assert.Equal(t, entity.LogStatusFailed, entry.Status)
	assert.Nil(t, entry.DeviceID)
}

func TestAutomationService_ExecuteDeviceAction_CapabilityMissingWritesFailedLog(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).
		Return(&entity.DeviceControl{DeviceID: deviceID, CanTurnOnOff: false, CurrentState: entity.ControlStateOff}, nil)
	fx.logRepo.EXPECT().
		CreateLog(ctx, mock.MatchedBy(func(l *entity.AutomationLog) bool {
			return l.Status == entity.LogStatusFailed && l.DeviceID != nil && *l.DeviceID == deviceID
		})).
		Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		Action: entity.RuleAction{
			Type:       entity.ActionTypeDeviceControl,
			Parameters: map[string]any{"state": "on"},
		},
	})

	assert.ErrorIs(t, err, domainerrors.ErrCapabilityNotSupported)
	assert.Equal(t, entity.LogStatusFailed, entry.Status)
}

func TestAutomationService_ExecuteDeviceAction_ToggleTurnsOn(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	ruleID := uuid.New()
	device := &entity.Device{ID: deviceID, UserID: userID, Status: entity.DeviceStatusInactive}
	control := &entity.DeviceControl{DeviceID: deviceID, CanTurnOnOff: true, CurrentState: entity.ControlStateOff}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).Return(control, nil)

	txControlRepo := mockRepo.NewMockDeviceControlRepository(t)
	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DeviceControlRepo().Return(txControlRepo)
		f.EXPECT().DeviceRepo().Return(txDeviceRepo)
	})
	txControlRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.DeviceControl) bool {
			return c.CurrentState == entity.ControlStateOn && c.LastCommandAt != nil
		})).
		Return(nil)
	txDeviceRepo.EXPECT().
		UpdateDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.Status == entity.DeviceStatusActive
		})).
		Return(nil)
	fx.commander.EXPECT().
		SendCommand(ctx, mock.MatchedBy(func(cmd *service.DeviceCommand) bool {
			return cmd.DeviceID == deviceID && cmd.State == "on"
		})).
		Return(nil)
	fx.logRepo.EXPECT().
		CreateLog(ctx, mock.MatchedBy(func(l *entity.AutomationLog) bool {
			return l.Status == entity.LogStatusSuccess && l.RuleID != nil && *l.RuleID == ruleID
		})).
		Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		RuleID:   &ruleID,
		Action: entity.RuleAction{
			Type:       entity.ActionTypeDeviceControl,
			Parameters: map[string]any{"state": "toggle"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LogStatusSuccess, entry.Status)
	assert.Equal(t, "on", entry.Details["state"])
}

func TestAutomationService_ExecuteDeviceAction_CommandFailureStillSucceeds(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &entity.Device{ID: deviceID, UserID: userID, Status: entity.DeviceStatusActive}
	control := &entity.DeviceControl{DeviceID: deviceID, CanSetPowerLevel: true, CurrentState: entity.ControlStateOn, CurrentPowerLevel: 100}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).Return(control, nil)

	txControlRepo := mockRepo.NewMockDeviceControlRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DeviceControlRepo().Return(txControlRepo)
	})
	txControlRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.DeviceControl")).Return(nil)
	fx.commander.EXPECT().SendCommand(ctx, mock.Anything).Return(errors.New("broker offline"))
	fx.logRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		Action: entity.RuleAction{
			Type:       entity.ActionTypeOptimize,
			Parameters: map[string]any{"target_level": float64(60)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 100, entry.Details["previous_power_level"])
	assert.Equal(t, 60, entry.Details["power_level"])
}

func TestAutomationService_ExecuteDeviceAction_OptimizeBelowTargetIsNoop(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).
		Return(&entity.DeviceControl{DeviceID: deviceID, CanSetPowerLevel: true, CurrentPowerLevel: 40}, nil)
	fx.logRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		Action:   entity.RuleAction{Type: entity.ActionTypeOptimize},
	})

	require.NoError(t, err)
	assert.Equal(t, 40, entry.Details["power_level"])
	assert.Equal(t, defaultOptimizeLevel, entry.Details["target_level"])
}

func TestAutomationService_ExecuteDeviceAction_Notification(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notifications.EXPECT().
		Notify(ctx, userID, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.Title == "Peak hours" && in.Category == CategoryAutomation
		})).
		Return(&entity.UserNotification{ID: notificationID}, nil)
	fx.logRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, userID, &usecase.ExecuteActionInput{
		Action: entity.RuleAction{
			Type:       entity.ActionTypeNotification,
			Parameters: map[string]any{"title": "Peak hours", "message": "Tariff is high"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, notificationID.String(), entry.Details["notification_id"])
}

func TestAutomationService_ExecuteDeviceAction_ForeignDevice(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
	fx.logRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)

	entry, err := fx.service.ExecuteDeviceAction(ctx, uuid.New(), &usecase.ExecuteActionInput{
		DeviceID: deviceID,
		Action:   entity.RuleAction{Type: entity.ActionTypeDeviceControl, Parameters: map[string]any{"state": "on"}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	assert.Equal(t, entity.LogStatusFailed, entry.Status)
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]any
		want    int
		present bool
		wantErr bool
	}{
		{name: "missing", params: map[string]any{}},
		{name: "float", params: map[string]any{"power_level": float64(55)}, want: 55, present: true},
		{name: "string", params: map[string]any{"power_level": "30"}, want: 30, present: true},
		{name: "fraction", params: map[string]any{"power_level": 12.5}, wantErr: true},
		{name: "out of range", params: map[string]any{"power_level": 101}, wantErr: true},
		{name: "not a number", params: map[string]any{"power_level": "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := intParam(tt.params, paramPowerLevel)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidActionParameters)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
