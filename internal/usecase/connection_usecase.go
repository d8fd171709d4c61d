package usecase

import (
	"context"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateConnectionInput is the data needed to register a consumer connection.
type CreateConnectionInput struct {
	ConsumerNumber   string
	MeterNumber      string
	ElectricityBoard string
	ConnectionType   entity.ConnectionType
	PhaseType        entity.PhaseType
	SanctionedLoadKW float64
	Address          string
	IsPrimary        bool
}

// UpdateConnectionInput is a patch; nil fields are left unchanged.
// Primary status is changed only through SetPrimaryConnection.
type UpdateConnectionInput struct {
	ConsumerNumber   *string
	MeterNumber      *string
	ElectricityBoard *string
	ConnectionType   *entity.ConnectionType
	PhaseType        *entity.PhaseType
	SanctionedLoadKW *float64
	Address          *string
}

// ConnectionUsecase manages consumer connections. At most one connection per
// user is primary; every operation that moves the flag runs in one transaction.
type ConnectionUsecase interface {
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.ConsumerConnection, error)
	CreateConnection(ctx context.Context, userID uuid.UUID, input *CreateConnectionInput) (*entity.ConsumerConnection, error)
	UpdateConnection(ctx context.Context, userID, connectionID uuid.UUID, input *UpdateConnectionInput) (*entity.ConsumerConnection, error)
	DeleteConnection(ctx context.Context, userID, connectionID uuid.UUID) error
	SetPrimaryConnection(ctx context.Context, userID, connectionID uuid.UUID) error
	ConnectionQRCode(ctx context.Context, userID, connectionID uuid.UUID) ([]byte, error)
}
