package model

import (
	"time"

	"github.com/google/uuid"
)

// UserNotificationModel mirrors the 'user_notifications' table.
type UserNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_notifications_user_created,priority:1"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(10);not null;default:'info'"`
	Category  string    `gorm:"type:varchar(50)"`
	IsRead    bool      `gorm:"not null;default:false"`
	ActionURL string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"index:idx_user_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationModel) TableName() string {
	return "user_notifications"
}
