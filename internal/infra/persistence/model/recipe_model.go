package model

import (
	"time"
)

// RecipeModel mirrors the 'recipes' table. UserID is nullable so orphan
// records stay representable; the FK cascades on user deletion.
type RecipeModel struct {
	ID                int    `gorm:"primaryKey"`
	Title             string `gorm:"type:varchar(100);not null"`
	Instructions      string `gorm:"type:text;not null"`
	MinutesToComplete int    `gorm:"not null"`
	UserID            *int
	User              *UserModel `gorm:"foreignKey:UserID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
