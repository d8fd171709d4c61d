package repository

import (
	"context"
	"errors"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for consumer connection persistence.
var (
	// ErrConnectionNotFound is returned when a connection is not found.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnection is returned when the consumer number already exists for the user.
	ErrDuplicateConnection = errors.New("connection already exists")
)

// ConnectionRepository defines the operations for consumer connection persistence.
type ConnectionRepository interface {
	// ListConnections returns the user's connections, primary first, then by created_at ASC.
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.ConsumerConnection, error)

	FindConnectionByID(ctx context.Context, id uuid.UUID) (*entity.ConsumerConnection, error)

	// FindOldestConnection returns the earliest created connection of a user.
	FindOldestConnection(ctx context.Context, userID uuid.UUID) (*entity.ConsumerConnection, error)

	CountConnections(ctx context.Context, userID uuid.UUID) (int64, error)
	CreateConnection(ctx context.Context, conn *entity.ConsumerConnection) error
	UpdateConnection(ctx context.Context, conn *entity.ConsumerConnection) error
	DeleteConnection(ctx context.Context, id uuid.UUID) error

	// ClearPrimary sets is_primary = false on every connection of the user.
	ClearPrimary(ctx context.Context, userID uuid.UUID) error

	// MarkPrimary sets is_primary = true on a single connection.
	MarkPrimary(ctx context.Context, id uuid.UUID) error
}
