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

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository is the constructor for goalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (repo *goalRepository) ListGoals(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyGoal, error) {
	rows, err := listByUser[model.EnergyGoalModel](ctx, repo.db, userID, "created_at DESC", "failed to list energy goals")
	if err != nil {
		return []*entity.EnergyGoal{}, err
	}

	return toSlice(rows, toGoalDomain), nil
}

func (repo *goalRepository) FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.EnergyGoal, error) {
	row, err := findByID[model.EnergyGoalModel](ctx, repo.db, id, repository.ErrGoalNotFound, "failed to find energy goal")
	if err != nil {
		return nil, err
	}

	return toGoalDomain(row), nil
}

func (repo *goalRepository) CreateGoal(ctx context.Context, goal *entity.EnergyGoal) error {
	goalM := fromGoalDomain(goal)
	if err := repo.db.WithContext(ctx).Create(goalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create energy goal")
	}

	goal.ID = goalM.ID
	goal.CreatedAt = goalM.CreatedAt
	goal.UpdatedAt = goalM.UpdatedAt

	return nil
}

func (repo *goalRepository) UpdateGoal(ctx context.Context, goal *entity.EnergyGoal) error {
	goalM := fromGoalDomain(goal)
	if err := updateByID(ctx, repo.db, goalM, repository.ErrGoalNotFound, "failed to update energy goal"); err != nil {
		return err
	}

	goal.UpdatedAt = goalM.UpdatedAt

	return nil
}

func (repo *goalRepository) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.EnergyGoalModel](ctx, repo.db, id, repository.ErrGoalNotFound, "failed to delete energy goal")
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.EnergyAlert, error) {
	rows, err := listByUser[model.EnergyAlertModel](ctx, repo.db, userID, "created_at DESC", "failed to list energy alerts")
	if err != nil {
		return []*entity.EnergyAlert{}, err
	}

	return toSlice(rows, toAlertDomain), nil
}

func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.EnergyAlert, error) {
	row, err := findByID[model.EnergyAlertModel](ctx, repo.db, id, repository.ErrAlertNotFound, "failed to find energy alert")
	if err != nil {
		return nil, err
	}

	return toAlertDomain(row), nil
}

func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.EnergyAlert) error {
	alertM := fromAlertDomain(alert)
	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create energy alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

func (repo *alertRepository) UpdateAlert(ctx context.Context, alert *entity.EnergyAlert) error {
	alertM := fromAlertDomain(alert)
	if err := updateByID(ctx, repo.db, alertM, repository.ErrAlertNotFound, "failed to update energy alert"); err != nil {
		return err
	}

	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

func (repo *alertRepository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.EnergyAlertModel](ctx, repo.db, id, repository.ErrAlertNotFound, "failed to delete energy alert")
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (repo *recommendationRepository) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error) {
	rows, err := listByUser[model.RecommendationModel](ctx, repo.db, userID, "created_at DESC", "failed to list recommendations")
	if err != nil {
		return []*entity.Recommendation{}, err
	}

	return toSlice(rows, toRecommendationDomain), nil
}

func (repo *recommendationRepository) FindRecommendationByID(ctx context.Context, id uuid.UUID) (*entity.Recommendation, error) {
	row, err := findByID[model.RecommendationModel](ctx, repo.db, id, repository.ErrRecommendationNotFound, "failed to find recommendation")
	if err != nil {
		return nil, err
	}

	return toRecommendationDomain(row), nil
}

func (repo *recommendationRepository) CreateRecommendation(ctx context.Context, rec *entity.Recommendation) error {
	recM := fromRecommendationDomain(rec)
	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt
	rec.UpdatedAt = recM.UpdatedAt

	return nil
}

func (repo *recommendationRepository) UpdateRecommendation(ctx context.Context, rec *entity.Recommendation) error {
	recM := fromRecommendationDomain(rec)
	if err := updateByID(ctx, repo.db, recM, repository.ErrRecommendationNotFound, "failed to update recommendation"); err != nil {
		return err
	}

	rec.UpdatedAt = recM.UpdatedAt

	return nil
}

func (repo *recommendationRepository) DeleteRecommendation(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.RecommendationModel](ctx, repo.db, id, repository.ErrRecommendationNotFound, "failed to delete recommendation")
}

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

// ListBills returns the most recent billing period first.
func (repo *billingRepository) ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.BillingData, error) {
	rows, err := listByUser[model.BillingDataModel](ctx, repo.db, userID, "period_end DESC", "failed to list bills")
	if err != nil {
		return []*entity.BillingData{}, err
	}

	return toSlice(rows, toBillDomain), nil
}

func (repo *billingRepository) FindBillByID(ctx context.Context, id uuid.UUID) (*entity.BillingData, error) {
	row, err := findByID[model.BillingDataModel](ctx, repo.db, id, repository.ErrBillNotFound, "failed to find bill")
	if err != nil {
		return nil, err
	}

	return toBillDomain(row), nil
}

func (repo *billingRepository) CreateBill(ctx context.Context, bill *entity.BillingData) error {
	billM := fromBillDomain(bill)
	if err := repo.db.WithContext(ctx).Create(billM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConnectionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bill")
	}

	bill.ID = billM.ID
	bill.CreatedAt = billM.CreatedAt
	bill.UpdatedAt = billM.UpdatedAt

	return nil
}

func (repo *billingRepository) UpdateBill(ctx context.Context, bill *entity.BillingData) error {
	billM := fromBillDomain(bill)
	if err := updateByID(ctx, repo.db, billM, repository.ErrBillNotFound, "failed to update bill"); err != nil {
		return err
	}

	bill.UpdatedAt = billM.UpdatedAt

	return nil
}

func (repo *billingRepository) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.BillingDataModel](ctx, repo.db, id, repository.ErrBillNotFound, "failed to delete bill")
}

func toGoalDomain(data *model.EnergyGoalModel) *entity.EnergyGoal {
	return &entity.EnergyGoal{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		GoalType:     entity.GoalType(data.GoalType),
		TargetValue:  data.TargetValue,
		CurrentValue: data.CurrentValue,
		Unit:         data.Unit,
		Period:       entity.GoalPeriod(data.Period),
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Status:       entity.GoalStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromGoalDomain(data *entity.EnergyGoal) *model.EnergyGoalModel {
	return &model.EnergyGoalModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		GoalType:     string(data.GoalType),
		TargetValue:  data.TargetValue,
		CurrentValue: data.CurrentValue,
		Unit:         data.Unit,
		Period:       string(data.Period),
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toAlertDomain(data *model.EnergyAlertModel) *entity.EnergyAlert {
	return &entity.EnergyAlert{
		ID:         data.ID,
		UserID:     data.UserID,
		AlertType:  data.AlertType,
		Severity:   entity.AlertSeverity(data.Severity),
		Title:      data.Title,
		Message:    data.Message,
		DeviceID:   data.DeviceID,
		IsRead:     data.IsRead,
		IsResolved: data.IsResolved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAlertDomain(data *entity.EnergyAlert) *model.EnergyAlertModel {
	return &model.EnergyAlertModel{
		ID:         data.ID,
		UserID:     data.UserID,
		AlertType:  data.AlertType,
		Severity:   string(data.Severity),
		Title:      data.Title,
		Message:    data.Message,
		DeviceID:   data.DeviceID,
		IsRead:     data.IsRead,
		IsResolved: data.IsResolved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toRecommendationDomain(data *model.RecommendationModel) *entity.Recommendation {
	return &entity.Recommendation{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Description:      data.Description,
		Category:         data.Category,
		Priority:         entity.Priority(data.Priority),
		PotentialSavings: data.PotentialSavings,
		Status:           entity.RecommendationStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromRecommendationDomain(data *entity.Recommendation) *model.RecommendationModel {
	return &model.RecommendationModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Description:      data.Description,
		Category:         data.Category,
		Priority:         string(data.Priority),
		PotentialSavings: data.PotentialSavings,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toBillDomain(data *model.BillingDataModel) *entity.BillingData {
	return &entity.BillingData{
		ID:            data.ID,
		UserID:        data.UserID,
		ConnectionID:  data.ConnectionID,
		PeriodStart:   data.PeriodStart,
		PeriodEnd:     data.PeriodEnd,
		UnitsConsumed: data.UnitsConsumed,
		Amount:        data.Amount,
		DueDate:       data.DueDate,
		Status:        entity.BillStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromBillDomain(data *entity.BillingData) *model.BillingDataModel {
	return &model.BillingDataModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ConnectionID:  data.ConnectionID,
		PeriodStart:   data.PeriodStart,
		PeriodEnd:     data.PeriodEnd,
		UnitsConsumed: data.UnitsConsumed,
		Amount:        data.Amount,
		DueDate:       data.DueDate,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
