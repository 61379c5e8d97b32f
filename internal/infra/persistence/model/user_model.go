package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are database-generated integers.
// It is an exported type so other packages can reference the persisted schema.
type UserModel struct {
	ID           int     `gorm:"primaryKey"`
	Username     string  `gorm:"type:varchar(50);unique;not null"`
	PasswordHash string  `gorm:"type:varchar(128)"`
	Bio          *string `gorm:"type:text"`
	ImageURL     *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes  []RecipeModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions []SessionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
