package model

import "time"

// RunHistory is an append-only log of commands typed into the Run dialog
type RunHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Command   string    `gorm:"type:varchar(255);not null" json:"command" validate:"required,max=255"`
	Result    string    `gorm:"type:text;not null;default:''" json:"result"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for RunHistory
func (RunHistory) TableName() string {
	return "run_history"
}
