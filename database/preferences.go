package database

import (
	"context"

	"github.com/sahilchouksey/pixel-portfolio/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreatePreferences returns the singleton preference row, inserting the
// defaults first if it does not exist yet. The insert is a no-op on conflict
// so concurrent first reads cannot create a second row.
func GetOrCreatePreferences(ctx context.Context, db *gorm.DB) (*model.UserPreference, error) {
	defaults := model.DefaultPreference()
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error; err != nil {
		return nil, err
	}

	var prefs model.UserPreference
	if err := db.WithContext(ctx).First(&prefs, model.PreferenceID).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}
