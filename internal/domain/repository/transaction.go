package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	ProfileRepo() ProfileRepository
	DeviceRepo() DeviceRepository
	DeviceControlRepo() DeviceControlRepository
	ConnectionRepo() ConnectionRepository
	AutomationRuleRepo() AutomationRuleRepository
	AutomationLogRepo() AutomationLogRepository
}
