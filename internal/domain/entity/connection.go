package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionType is the tariff category of a consumer connection.
type ConnectionType string

const (
	ConnectionTypeDomestic   ConnectionType = "domestic"
	ConnectionTypeCommercial ConnectionType = "commercial"
	ConnectionTypeIndustrial ConnectionType = "industrial"
)

// IsValid checks if the ConnectionType is a valid value.
func (t ConnectionType) IsValid() bool {
	switch t {
	case ConnectionTypeDomestic, ConnectionTypeCommercial, ConnectionTypeIndustrial:
		return true
	default:
		return false
	}
}

// PhaseType is the supply phase of a connection.
type PhaseType string

const (
	PhaseTypeSingle PhaseType = "single"
	PhaseTypeThree  PhaseType = "three"
)

// IsValid checks if the PhaseType is a valid value.
func (p PhaseType) IsValid() bool {
	return p == PhaseTypeSingle || p == PhaseTypeThree
}

// ConsumerConnection is a user's registered utility meter/account.
// At most one connection per user has IsPrimary set.
type ConsumerConnection struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ConsumerNumber   string
	MeterNumber      string
	ElectricityBoard string
	ConnectionType   ConnectionType
	PhaseType        PhaseType
	SanctionedLoadKW float64
	Address          string
	IsPrimary        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
