package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme is the UI colour scheme stored with the profile.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid checks if the Theme is a valid value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// NotificationPreferences controls which channels and topics reach the user.
type NotificationPreferences struct {
	Email             bool `json:"email"`
	Push              bool `json:"push"`
	SMS               bool `json:"sms"`
	EnergyAlerts      bool `json:"energy_alerts"`
	BillReminders     bool `json:"bill_reminders"`
	AutomationUpdates bool `json:"automation_updates"`
	WeeklyReport      bool `json:"weekly_report"`
}

// DefaultNotificationPreferences is applied to profiles created on first login.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Email:             true,
		Push:              true,
		EnergyAlerts:      true,
		BillReminders:     true,
		AutomationUpdates: true,
		WeeklyReport:      false,
	}
}

// Profile holds contact, location, tariff and display settings for a user.
// It is created on first login and never deleted by the application.
type Profile struct {
	UserID                  uuid.UUID
	FullName                string
	Phone                   string
	Address                 string
	City                    string
	State                   string
	Pincode                 string
	NotificationPreferences NotificationPreferences
	EnergyRate              float64 // Price per kWh in Currency.
	Currency                string
	Theme                   Theme
	Language                string
	PushToken               string // FCM registration token, empty when push is not set up.
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// WantsPush reports whether a push notification may be delivered.
func (p *Profile) WantsPush() bool {
	return p != nil && p.PushToken != "" && p.NotificationPreferences.Push
}
