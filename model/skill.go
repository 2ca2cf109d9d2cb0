package model

// Skill categories
const (
	SkillProgramming = "programming"
	SkillWeb         = "web"
	SkillDatabase    = "database"
	SkillTools       = "tools"
)

// Skill is a progress bar on the about page
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Category    string `gorm:"type:varchar(20);not null" json:"category" validate:"required,oneof=programming web database tools"`
	Proficiency int    `gorm:"not null" json:"proficiency" validate:"gte=1,lte=100"`
	Icon        string `gorm:"type:varchar(100)" json:"icon" validate:"max=100"` // CSS class or emoji
}

// TableName specifies the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// CategoryLabel is the heading the skill is grouped under.
func (s Skill) CategoryLabel() string {
	switch s.Category {
	case SkillProgramming:
		return "Programming Languages"
	case SkillWeb:
		return "Web Technologies"
	case SkillDatabase:
		return "Database"
	case SkillTools:
		return "Tools & Frameworks"
	}
	return s.Category
}
