package model

import (
	"time"

	"gorm.io/gorm"
)

// User is an operator account for the admin console
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Username     string         `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(254)" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	IsSuperuser  bool           `gorm:"not null;default:false" json:"is_superuser"`
	TokenVersion int            `gorm:"default:0" json:"-"` // Increment to invalidate all user tokens
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
}

// Role is the claim stored in issued tokens.
func (u User) Role() string {
	if u.IsSuperuser {
		return "admin"
	}
	return "staff"
}
