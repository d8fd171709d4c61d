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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// ListNotifications returns the newest notifications first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.UserNotification, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var rows []model.UserNotificationModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return []*entity.UserNotification{}, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	return toSlice(rows, toNotificationDomain), nil
}

func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.UserNotification, error) {
	var notificationM model.UserNotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notification")
	}

	return toNotificationDomain(&notificationM), nil
}

// CreateNotification persists a new user notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.UserNotification) error {
	notificationM := fromNotificationDomain(notification)
	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.UserNotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead succeeds even when nothing was unread.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Model(&model.UserNotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications as read")
	}

	return nil
}

func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserNotificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func toNotificationDomain(data *model.UserNotificationModel) *entity.UserNotification {
	return &entity.UserNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      entity.NotificationType(data.Type),
		Category:  data.Category,
		IsRead:    data.IsRead,
		ActionURL: data.ActionURL,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.UserNotification) *model.UserNotificationModel {
	return &model.UserNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      string(data.Type),
		Category:  data.Category,
		IsRead:    data.IsRead,
		ActionURL: data.ActionURL,
		CreatedAt: data.CreatedAt,
	}
}
