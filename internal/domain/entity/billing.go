package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// IsValid checks if the BillStatus is a valid value.
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	default:
		return false
	}
}

// BillingData is one utility bill.
type BillingData struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ConnectionID  *uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	UnitsConsumed float64 // kWh.
	Amount        float64
	DueDate       *time.Time
	Status        BillStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
