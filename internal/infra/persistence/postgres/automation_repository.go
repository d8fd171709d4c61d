package postgres

import (
	"context"
	"time"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultLogLimit = 50

type automationRuleRepository struct {
	db *gorm.DB
}

// NewAutomationRuleRepository is the constructor for automationRuleRepository.
func NewAutomationRuleRepository(db *gorm.DB) repository.AutomationRuleRepository {
	return &automationRuleRepository{db: db}
}

// ListRules orders by priority, highest first, then newest.
func (repo *automationRuleRepository) ListRules(ctx context.Context, userID uuid.UUID) ([]*entity.AutomationRule, error) {
	var rows []model.AutomationRuleModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("priority DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return []*entity.AutomationRule{}, domainerrors.NewDatabaseExecuteError(err, "failed to list automation rules")
	}

	return toSlice(rows, toRuleDomain), nil
}

func (repo *automationRuleRepository) FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.AutomationRule, error) {
	var ruleM model.AutomationRuleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find automation rule")
	}

	return toRuleDomain(&ruleM), nil
}

func (repo *automationRuleRepository) CreateRule(ctx context.Context, rule *entity.AutomationRule) error {
	ruleM := fromRuleDomain(rule)
	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create automation rule")
	}

	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// UpdateRule leaves the execution counters alone; they belong to RecordExecution.
func (repo *automationRuleRepository) UpdateRule(ctx context.Context, rule *entity.AutomationRule) error {
	ruleM := fromRuleDomain(rule)

	result := repo.db.WithContext(ctx).Model(ruleM).
		Select("*").
		Omit("id", "user_id", "execution_count", "last_executed_at", "created_at").
		Updates(ruleM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update automation rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

func (repo *automationRuleRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AutomationRuleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete automation rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

// RecordExecution bumps the counter in SQL so concurrent triggers do not lose increments.
func (repo *automationRuleRepository) RecordExecution(ctx context.Context, id uuid.UUID, executedAt time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.AutomationRuleModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"execution_count":  gorm.Expr("execution_count + 1"),
			"last_executed_at": executedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record rule execution")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

type deviceScheduleRepository struct {
	db *gorm.DB
}

// NewDeviceScheduleRepository is the constructor for deviceScheduleRepository.
func NewDeviceScheduleRepository(db *gorm.DB) repository.DeviceScheduleRepository {
	return &deviceScheduleRepository{db: db}
}

func (repo *deviceScheduleRepository) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSchedule, error) {
	var rows []model.DeviceScheduleModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return []*entity.DeviceSchedule{}, domainerrors.NewDatabaseExecuteError(err, "failed to list device schedules")
	}

	return toSlice(rows, toScheduleDomain), nil
}

func (repo *deviceScheduleRepository) FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.DeviceSchedule, error) {
	var scheduleM model.DeviceScheduleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device schedule")
	}

	return toScheduleDomain(&scheduleM), nil
}

func (repo *deviceScheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.DeviceSchedule) error {
	scheduleM := fromScheduleDomain(schedule)
	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device schedule")
	}

	schedule.ID = scheduleM.ID
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

func (repo *deviceScheduleRepository) UpdateSchedule(ctx context.Context, schedule *entity.DeviceSchedule) error {
	scheduleM := fromScheduleDomain(schedule)

	result := updateColumns(ctx, repo.db, scheduleM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

func (repo *deviceScheduleRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeviceScheduleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

type automationLogRepository struct {
	db *gorm.DB
}

// NewAutomationLogRepository is the constructor for automationLogRepository.
func NewAutomationLogRepository(db *gorm.DB) repository.AutomationLogRepository {
	return &automationLogRepository{db: db}
}

func (repo *automationLogRepository) CreateLog(ctx context.Context, log *entity.AutomationLog) error {
	logM := fromAutomationLogDomain(log)
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create automation log")
	}

	log.ID = logM.ID

	return nil
}

// ListLogs returns the most recent logs first. A non-positive limit falls back to 50.
func (repo *automationLogRepository) ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AutomationLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}

	var rows []model.AutomationLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("executed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return []*entity.AutomationLog{}, domainerrors.NewDatabaseExecuteError(err, "failed to list automation logs")
	}

	return toSlice(rows, toAutomationLogDomain), nil
}

func toRuleDomain(data *model.AutomationRuleModel) *entity.AutomationRule {
	return &entity.AutomationRule{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Description:    data.Description,
		Conditions:     data.Conditions,
		Actions:        data.Actions,
		IsEnabled:      data.IsEnabled,
		Priority:       data.Priority,
		TimeStart:      data.TimeStart,
		TimeEnd:        data.TimeEnd,
		DaysOfWeek:     data.DaysOfWeek,
		ExecutionCount: data.ExecutionCount,
		LastExecutedAt: data.LastExecutedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRuleDomain(data *entity.AutomationRule) *model.AutomationRuleModel {
	return &model.AutomationRuleModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Description:    data.Description,
		Conditions:     data.Conditions,
		Actions:        data.Actions,
		IsEnabled:      data.IsEnabled,
		Priority:       data.Priority,
		TimeStart:      data.TimeStart,
		TimeEnd:        data.TimeEnd,
		DaysOfWeek:     data.DaysOfWeek,
		ExecutionCount: data.ExecutionCount,
		LastExecutedAt: data.LastExecutedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toScheduleDomain(data *model.DeviceScheduleModel) *entity.DeviceSchedule {
	return &entity.DeviceSchedule{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		Name:            data.Name,
		Action:          entity.ScheduleAction(data.Action),
		PowerLevel:      data.PowerLevel,
		ScheduleType:    entity.ScheduleType(data.ScheduleType),
		ScheduledTime:   data.ScheduledTime,
		DaysOfWeek:      data.DaysOfWeek,
		RunAt:           data.RunAt,
		IsEnabled:       data.IsEnabled,
		NextExecutionAt: data.NextExecutionAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromScheduleDomain(data *entity.DeviceSchedule) *model.DeviceScheduleModel {
	return &model.DeviceScheduleModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		Name:            data.Name,
		Action:          string(data.Action),
		PowerLevel:      data.PowerLevel,
		ScheduleType:    string(data.ScheduleType),
		ScheduledTime:   data.ScheduledTime,
		DaysOfWeek:      data.DaysOfWeek,
		RunAt:           data.RunAt,
		IsEnabled:       data.IsEnabled,
		NextExecutionAt: data.NextExecutionAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toAutomationLogDomain(data *model.AutomationLogModel) *entity.AutomationLog {
	return &entity.AutomationLog{
		ID:              data.ID,
		UserID:          data.UserID,
		RuleID:          data.RuleID,
		DeviceID:        data.DeviceID,
		ActionType:      entity.ActionType(data.ActionType),
		Status:          entity.LogStatus(data.Status),
		Message:         data.Message,
		ExecutionTimeMs: data.ExecutionTimeMs,
		Details:         data.Details,
		ExecutedAt:      data.ExecutedAt,
	}
}

func fromAutomationLogDomain(data *entity.AutomationLog) *model.AutomationLogModel {
	return &model.AutomationLogModel{
		ID:              data.ID,
		UserID:          data.UserID,
		RuleID:          data.RuleID,
		DeviceID:        data.DeviceID,
		ActionType:      string(data.ActionType),
		Status:          string(data.Status),
		Message:         data.Message,
		ExecutionTimeMs: data.ExecutionTimeMs,
		Details:         data.Details,
		ExecutedAt:      data.ExecutedAt,
	}
}
