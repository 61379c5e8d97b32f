package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table. Only the SHA-256 digest of the
// client-held token is stored. There is no expiry column on purpose.
type SessionModel struct {
	ID        int    `gorm:"primaryKey"`
	UserID    int    `gorm:"not null;index"`
	TokenHash string `gorm:"type:varchar(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
