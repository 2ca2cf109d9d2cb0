package model

import "time"

// Profile is the owner card shown on the home and about pages. Only the
// first row is rendered.
type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Title       string    `gorm:"type:varchar(150)" json:"title" validate:"max=150"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Location    string    `gorm:"type:varchar(100)" json:"location" validate:"max=100"`
	Email       string    `gorm:"type:varchar(254)" json:"email" validate:"omitempty,email"`
	AvatarURL   string    `gorm:"type:varchar(512)" json:"avatar_url" validate:"omitempty,url"`
	ResumeURL   string    `gorm:"type:varchar(512)" json:"resume_url" validate:"omitempty,url"`
	ResumePages int       `json:"resume_pages"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
