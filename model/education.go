package model

// Education is a degree or school entry on the about page
type Education struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Degree      string  `gorm:"type:varchar(200);not null" json:"degree" validate:"required,max=200"`
	Institution string  `gorm:"type:varchar(200);not null" json:"institution" validate:"required,max=200"`
	StartYear   int     `gorm:"not null" json:"start_year" validate:"required"`
	EndYear     int     `gorm:"not null" json:"end_year" validate:"required,gtefield=StartYear"`
	Percentage  float64 `gorm:"not null" json:"percentage" validate:"gte=0,lte=100"` // XP bar
	Description string  `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Education
func (Education) TableName() string {
	return "education"
}
