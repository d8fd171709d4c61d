package model

import (
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Roles     []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile         *ProfileModel         `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID is both primary key and FK to users.id.
type ProfileModel struct {
	UserID                  uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	FullName                string                         `gorm:"type:varchar(150)"`
	Phone                   string                         `gorm:"type:varchar(20)"`
	Address                 string                         `gorm:"type:text"`
	City                    string                         `gorm:"type:varchar(100)"`
	State                   string                         `gorm:"type:varchar(100)"`
	Pincode                 string                         `gorm:"type:varchar(10)"`
	NotificationPreferences entity.NotificationPreferences `gorm:"type:jsonb;serializer:json"`
	EnergyRate              float64                        `gorm:"type:numeric(10,2);not null;default:6.5"`
	Currency                string                         `gorm:"type:varchar(3);not null;default:'INR'"`
	Theme                   string                         `gorm:"type:varchar(10);not null;default:'system'"`
	Language                string                         `gorm:"type:varchar(10);not null;default:'en'"`
	PushToken               string                         `gorm:"type:varchar(255)"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AuthenticationModel is one sign-in method of a user ('user_authentications').
// Provider plus ProviderUserID is unique: an email or a Google subject maps to
// exactly one user.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_subject"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_subject"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel stores the hex SHA-256 of an issued refresh token, never the token.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
