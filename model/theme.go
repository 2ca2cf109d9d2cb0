package model

import (
	"time"

	"gorm.io/datatypes"
)

// Theme is a named bundle of CSS custom-property overrides for the desktop UI
type Theme struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Key       string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"key" validate:"required,max=50"`
	Name      string            `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Variables datatypes.JSONMap `json:"variables"`
	IsDefault bool              `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TableName specifies the table name for Theme
func (Theme) TableName() string {
	return "themes"
}
