package postgres

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB returns a gorm session that builds SQL without a database and
// reports the last query statement through the returned func.
func newDryRunDB(t *testing.T) (*gorm.DB, func() string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun: true,
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	var last string
	err = db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		last = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return db, func() string { return last }
}

func TestDeviceRepository_ListDevices_NewestFirst(t *testing.T) {
	db, lastSQL := newDryRunDB(t)
	repo := NewDeviceRepository(db)

	devices, err := repo.ListDevices(context.Background(), uuid.New(), entity.DeviceFilter{})

	require.NoError(t, err)
	assert.Empty(t, devices)
	assert.Contains(t, lastSQL(), "user_id = ?")
	assert.Contains(t, lastSQL(), "ORDER BY created_at DESC")
}

func TestDeviceRepository_ListDevices_Filters(t *testing.T) {
	db, lastSQL := newDryRunDB(t)
	repo := NewDeviceRepository(db)

	_, err := repo.ListDevices(context.Background(), uuid.New(), entity.DeviceFilter{
		Status: entity.DeviceStatusActive,
		Type:   entity.DeviceTypeHVAC,
	})

	require.NoError(t, err)
	assert.Contains(t, lastSQL(), "status = ?")
	assert.Contains(t, lastSQL(), "type = ?")
	assert.Contains(t, lastSQL(), "ORDER BY created_at DESC")
}
