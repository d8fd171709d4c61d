// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) AuthRepo() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) DeviceRepo() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func (f *gormRepositoryFactory) DeviceControlRepo() repository.DeviceControlRepository {
	return NewDeviceControlRepository(f.tx)
}

// ConnectionRepo backs the primary-connection invariant: clear and mark must share one transaction.
func (f *gormRepositoryFactory) ConnectionRepo() repository.ConnectionRepository {
	return NewConnectionRepository(f.tx)
}

func (f *gormRepositoryFactory) AutomationRuleRepo() repository.AutomationRuleRepository {
	return NewAutomationRuleRepository(f.tx)
}

func (f *gormRepositoryFactory) AutomationLogRepo() repository.AutomationLogRepository {
	return NewAutomationLogRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. fn's error is returned unchanged and
// rolls back; a panic in fn also rolls back and is re-raised by gorm.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return domainerrors.NewDatabaseExecuteError(err, "transaction failed")
	default:
		return nil
	}
}
