package model

import "time"

// Project statuses
const (
	ProjectCompleted  = "completed"
	ProjectInProgress = "in_progress"
	ProjectPlanned    = "planned"
)

// Project is a portfolio entry shown in the quest log
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title" validate:"required,max=200"`
	Objective   string    `gorm:"type:text;not null" json:"objective" validate:"required"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Status      string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	Reward      string    `gorm:"type:varchar(300);not null" json:"reward" validate:"required,max=300"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url" validate:"omitempty,url"`
	GithubLink  string    `gorm:"type:varchar(512)" json:"github_link" validate:"omitempty,url"`
	LiveDemo    string    `gorm:"type:varchar(512)" json:"live_demo" validate:"omitempty,url"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// StatusLabel is the human readable status.
func (p Project) StatusLabel() string {
	switch p.Status {
	case ProjectInProgress:
		return "In Progress"
	case ProjectPlanned:
		return "Planned"
	default:
		return "Completed"
	}
}
