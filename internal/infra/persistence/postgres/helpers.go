package postgres

import (
	"context"

	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// updateColumns writes every column of m except identity, owner and creation columns.
// m must carry its primary key.
func updateColumns(ctx context.Context, db *gorm.DB, m any) *gorm.DB {
	return db.WithContext(ctx).Model(m).Select("*").Omit("id", "user_id", "created_at").Updates(m)
}

func toSlice[M any, E any](rows []M, convert func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for i := range rows {
		out = append(out, convert(&rows[i]))
	}

	return out
}

func findByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, notFound error, details string) (*M, error) {
	var row M
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return &row, nil
}

func listByUser[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, order string, details string) ([]M, error) {
	var rows []M
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return rows, nil
}

func deleteByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, notFound error, details string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func updateByID(ctx context.Context, db *gorm.DB, m any, notFound error, details string) error {
	result := updateColumns(ctx, db, m)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}
