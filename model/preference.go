package model

import "time"

// PreferenceID is the primary key of the single preferences row.
const PreferenceID uint = 1

// Preference defaults used when the singleton row is created lazily.
const (
	DefaultTheme        = "retro-98"
	DefaultWallpaper    = "default"
	DefaultSoundEnabled = true
	DefaultVolume       = 50

	MinVolume = 0
	MaxVolume = 100
)

// UserPreference holds the settings of the single demo user. The theme is
// kept as a plain key so deleting a theme never breaks the row.
type UserPreference struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Theme        string    `gorm:"type:varchar(50);not null" json:"theme" validate:"max=50"`
	Wallpaper    string    `gorm:"type:varchar(64);not null" json:"wallpaper" validate:"max=64"`
	SoundEnabled bool      `gorm:"not null" json:"sound_enabled"`
	Volume       int       `gorm:"not null" json:"volume" validate:"gte=0,lte=100"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for UserPreference
func (UserPreference) TableName() string {
	return "user_preferences"
}

// DefaultPreference returns the singleton row as first created.
func DefaultPreference() UserPreference {
	return UserPreference{
		ID:           PreferenceID,
		Theme:        DefaultTheme,
		Wallpaper:    DefaultWallpaper,
		SoundEnabled: DefaultSoundEnabled,
		Volume:       DefaultVolume,
	}
}

// ClampVolume bounds v to [MinVolume, MaxVolume].
func ClampVolume(v int) int {
	return max(MinVolume, min(MaxVolume, v))
}
