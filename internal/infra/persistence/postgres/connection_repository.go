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

// connectionRepository implements the domain.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

// ListConnections returns the primary connection first, then the rest oldest first.
func (repo *connectionRepository) ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.ConsumerConnection, error) {
	var rows []model.ConsumerConnectionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return []*entity.ConsumerConnection{}, domainerrors.NewDatabaseExecuteError(err, "failed to list connections")
	}

	return toSlice(rows, toConnectionDomain), nil
}

func (repo *connectionRepository) FindConnectionByID(ctx context.Context, id uuid.UUID) (*entity.ConsumerConnection, error) {
	var connM model.ConsumerConnectionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find connection")
	}

	return toConnectionDomain(&connM), nil
}

func (repo *connectionRepository) FindOldestConnection(ctx context.Context, userID uuid.UUID) (*entity.ConsumerConnection, error) {
	var connM model.ConsumerConnectionModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").First(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find oldest connection")
	}

	return toConnectionDomain(&connM), nil
}

func (repo *connectionRepository) CountConnections(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ConsumerConnectionModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count connections")
	}

	return count, nil
}

func (repo *connectionRepository) CreateConnection(ctx context.Context, conn *entity.ConsumerConnection) error {
	connM := fromConnectionDomain(conn)
	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		return mapConnectionWriteError(err, "failed to create connection")
	}

	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// UpdateConnection overwrites the descriptive columns. is_primary is only changed through ClearPrimary/MarkPrimary.
func (repo *connectionRepository) UpdateConnection(ctx context.Context, conn *entity.ConsumerConnection) error {
	connM := fromConnectionDomain(conn)

	result := repo.db.WithContext(ctx).Model(connM).
		Select("*").
		Omit("id", "user_id", "is_primary", "created_at").
		Updates(connM)
	if result.Error != nil {
		return mapConnectionWriteError(result.Error, "failed to update connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

func (repo *connectionRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ConsumerConnectionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

func (repo *connectionRepository) ClearPrimary(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Model(&model.ConsumerConnectionModel{}).
		Where("user_id = ? AND is_primary", userID).
		Update("is_primary", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary connection")
	}

	return nil
}

func (repo *connectionRepository) MarkPrimary(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.ConsumerConnectionModel{}).
		Where("id = ?", id).
		Update("is_primary", true)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("another connection is already primary")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark primary connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

func mapConnectionWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		if constraintName(err) == "idx_connections_one_primary" {
			return domainerrors.ErrConflict.WrapMessage("another connection is already primary")
		}

		return repository.ErrDuplicateConnection
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required connection information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toConnectionDomain(data *model.ConsumerConnectionModel) *entity.ConsumerConnection {
	return &entity.ConsumerConnection{
		ID:               data.ID,
		UserID:           data.UserID,
		ConsumerNumber:   data.ConsumerNumber,
		MeterNumber:      data.MeterNumber,
		ElectricityBoard: data.ElectricityBoard,
		ConnectionType:   entity.ConnectionType(data.ConnectionType),
		PhaseType:        entity.PhaseType(data.PhaseType),
		SanctionedLoadKW: data.SanctionedLoadKW,
		Address:          data.Address,
		IsPrimary:        data.IsPrimary,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromConnectionDomain(data *entity.ConsumerConnection) *model.ConsumerConnectionModel {
	return &model.ConsumerConnectionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		ConsumerNumber:   data.ConsumerNumber,
		MeterNumber:      data.MeterNumber,
		ElectricityBoard: data.ElectricityBoard,
		ConnectionType:   string(data.ConnectionType),
		PhaseType:        string(data.PhaseType),
		SanctionedLoadKW: data.SanctionedLoadKW,
		Address:          data.Address,
		IsPrimary:        data.IsPrimary,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
