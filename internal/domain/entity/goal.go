package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalType is the quantity a goal tracks.
type GoalType string

const (
	GoalTypeConsumption GoalType = "consumption"
	GoalTypeCost        GoalType = "cost"
	GoalTypeEfficiency  GoalType = "efficiency"
)

// IsValid checks if the GoalType is a valid value.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeConsumption, GoalTypeCost, GoalTypeEfficiency:
		return true
	default:
		return false
	}
}

// GoalPeriod is the window a goal is measured over.
type GoalPeriod string

const (
	GoalPeriodDaily   GoalPeriod = "daily"
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
)

// IsValid checks if the GoalPeriod is a valid value.
func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalPeriodDaily, GoalPeriodWeekly, GoalPeriodMonthly:
		return true
	default:
		return false
	}
}

// GoalStatus is the lifecycle of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
)

// IsValid checks if the GoalStatus is a valid value.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusFailed:
		return true
	default:
		return false
	}
}

// EnergyGoal is a target/actual tracking record.
type EnergyGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	GoalType     GoalType
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Period       GoalPeriod
	StartDate    time.Time
	EndDate      *time.Time
	Status       GoalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Progress returns CurrentValue as a percentage of TargetValue, clamped to [0, 100].
func (g *EnergyGoal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}

	pct := g.CurrentValue / g.TargetValue * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
