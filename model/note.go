package model

import "time"

// DefaultNoteTitle is used when a note is created without a title
const DefaultNoteTitle = "Untitled"

// Note is a notepad document. Deleting a note only flags it; flagged notes
// live in the recycle bin until purged.
type Note struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"type:varchar(200);not null" json:"title" validate:"max=200"`
	Content   string     `gorm:"type:text;not null;default:''" json:"content"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedOn *time.Time `json:"deleted_on,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `gorm:"index" json:"updated_at"`
}

// TableName specifies the table name for Note
func (Note) TableName() string {
	return "notes"
}

// MarkDeleted moves the note to the recycle bin, or restores it.
func (n *Note) MarkDeleted(deleted bool, at time.Time) {
	n.IsDeleted = deleted
	if deleted {
		n.DeletedOn = &at
	} else {
		n.DeletedOn = nil
	}
}
