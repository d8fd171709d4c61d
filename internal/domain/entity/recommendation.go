package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks recommendations.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// RecommendationStatus tracks what the user did with a recommendation.
type RecommendationStatus string

const (
	RecommendationStatusPending   RecommendationStatus = "pending"
	RecommendationStatusApplied   RecommendationStatus = "applied"
	RecommendationStatusDismissed RecommendationStatus = "dismissed"
)

// IsValid checks if the RecommendationStatus is a valid value.
func (s RecommendationStatus) IsValid() bool {
	switch s {
	case RecommendationStatusPending, RecommendationStatusApplied, RecommendationStatusDismissed:
		return true
	default:
		return false
	}
}

// Recommendation is an energy-saving suggestion shown on the insights panel.
type Recommendation struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	Description      string
	Category         string
	Priority         Priority
	PotentialSavings float64 // Currency per month.
	Status           RecommendationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
