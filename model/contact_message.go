package model

import "time"

// ContactMessage is a message left through the contact form
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" form:"name" validate:"required,max=100"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email" form:"email" validate:"required,email,max=254"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject" form:"subject" validate:"max=200"`
	Message   string    `gorm:"type:text;not null" json:"message" form:"message" validate:"required,max=5000"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
