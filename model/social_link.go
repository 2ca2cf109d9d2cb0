package model

// SocialLink is an external profile link. Hidden links stay in the table
// but are not rendered.
type SocialLink struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name" validate:"required,max=50"`
	URL       string `gorm:"type:varchar(512);not null" json:"url" validate:"required,url"`
	Icon      string `gorm:"type:varchar(100)" json:"icon" validate:"max=100"`
	Order     int    `gorm:"column:sort_order;not null" json:"order"`
	IsVisible bool   `gorm:"not null" json:"is_visible"`
}

// TableName specifies the table name for SocialLink
func (SocialLink) TableName() string {
	return "social_links"
}
