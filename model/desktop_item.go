package model

import "time"

// Desktop item types
const (
	ItemTypeFolder   = "folder"
	ItemTypeShortcut = "shortcut"
)

// Defaults for items created without explicit fields.
const (
	DefaultItemLabel = "New Folder"
	DefaultItemPos   = 100
)

// DesktopItem is a positioned icon persisted so the desktop layout survives reloads
type DesktopItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label" validate:"required,max=100"`
	ItemType  string    `gorm:"type:varchar(20);not null" json:"item_type" validate:"required,oneof=folder shortcut"`
	PosX      int       `gorm:"not null" json:"pos_x"`
	PosY      int       `gorm:"not null" json:"pos_y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for DesktopItem
func (DesktopItem) TableName() string {
	return "desktop_items"
}

// IsValidItemType reports whether t is a known desktop item type.
func IsValidItemType(t string) bool {
	return t == ItemTypeFolder || t == ItemTypeShortcut
}

// DesktopItemTemplate is a fixed preset used to drop a well-known icon on the desktop
type DesktopItemTemplate struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	ItemType string `json:"item_type"`
	PosX     int    `json:"pos_x"`
	PosY     int    `json:"pos_y"`
}

// DesktopItemTemplates lists the presets in display order.
var DesktopItemTemplates = []DesktopItemTemplate{
	{Key: "house", Label: "House", ItemType: ItemTypeFolder, PosX: 80, PosY: 360},
	{Key: "docs", Label: "Documents", ItemType: ItemTypeFolder, PosX: 80, PosY: 440},
	{Key: "pics", Label: "Pictures", ItemType: ItemTypeFolder, PosX: 80, PosY: 520},
	{Key: "link_projects", Label: "Projects", ItemType: ItemTypeShortcut, PosX: 180, PosY: 360},
}

// LookupDesktopItemTemplate finds a preset by key.
func LookupDesktopItemTemplate(key string) (DesktopItemTemplate, bool) {
	for _, t := range DesktopItemTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return DesktopItemTemplate{}, false
}

// NewItem builds an unsaved desktop item from the preset.
func (t DesktopItemTemplate) NewItem() DesktopItem {
	return DesktopItem{
		Label:    t.Label,
		ItemType: t.ItemType,
		PosX:     t.PosX,
		PosY:     t.PosY,
	}
}
