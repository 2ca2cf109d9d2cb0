package database_test

import (
	"context"
	"testing"

	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/database/dbtest"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAdmin = database.AdminCredentials{
	Username: "admin",
	Email:    "admin@example.com",
	Password: "s3cret-pass",
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestRunSeeds(t *testing.T) {
	auth.HashCost = 4
	db := dbtest.NewDB(t)

	require.NoError(t, database.RunSeeds(db, testAdmin))

	assert.Equal(t, int64(4), count(t, db, &model.Project{}))
	assert.Equal(t, int64(2), count(t, db, &model.Education{}))
	assert.Equal(t, int64(11), count(t, db, &model.Skill{}))
	assert.Equal(t, int64(1), count(t, db, &model.Profile{}))
	assert.Equal(t, int64(3), count(t, db, &model.SocialLink{}))
	assert.Equal(t, int64(len(database.ThemePresets())), count(t, db, &model.Theme{}))
	assert.Equal(t, int64(1), count(t, db, &model.UserPreference{}))

	var first model.Project
	require.NoError(t, db.Order("id").First(&first).Error)
	assert.Equal(t, "Alibaug Tourism & Ferry Website", first.Title)

	var hidden model.SocialLink
	require.NoError(t, db.Where("name = ?", "Twitter").First(&hidden).Error)
	assert.False(t, hidden.IsVisible)

	var admin model.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsSuperuser)
	assert.NoError(t, auth.VerifyPassword(admin.PasswordHash, testAdmin.Password))
}

func TestRunSeedsIsIdempotent(t *testing.T) {
	auth.HashCost = 4
	db := dbtest.NewDB(t)

	require.NoError(t, database.RunSeeds(db, testAdmin))
	require.NoError(t, database.RunSeeds(db, testAdmin))

	assert.Equal(t, int64(4), count(t, db, &model.Project{}))
	assert.Equal(t, int64(11), count(t, db, &model.Skill{}))
	assert.Equal(t, int64(1), count(t, db, &model.Profile{}))
	assert.Equal(t, int64(1), count(t, db, &model.User{}))
	assert.Equal(t, int64(len(database.ThemePresets())), count(t, db, &model.Theme{}))
}

func TestSeedAdminUserDefaultPassword(t *testing.T) {
	auth.HashCost = 4
	db := dbtest.NewDB(t)

	seeder := database.NewSeeder(db, database.AdminCredentials{Username: "operator"})
	require.NoError(t, seeder.SeedAdminUser())

	var admin model.User
	require.NoError(t, db.Where("username = ?", "operator").First(&admin).Error)
	assert.NoError(t, auth.VerifyPassword(admin.PasswordHash, database.DefaultAdminPassword))
}

func TestThemePresetsHaveOneDefault(t *testing.T) {
	defaults := 0
	keys := map[string]bool{}
	for _, theme := range database.ThemePresets() {
		assert.False(t, keys[theme.Key], "duplicate key %s", theme.Key)
		keys[theme.Key] = true
		assert.NotEmpty(t, theme.Variables)
		if theme.IsDefault {
			defaults++
			assert.Equal(t, model.DefaultTheme, theme.Key)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestGetOrCreatePreferences(t *testing.T) {
	db := dbtest.NewDB(t)
	ctx := context.Background()

	prefs, err := database.GetOrCreatePreferences(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, model.PreferenceID, prefs.ID)
	assert.Equal(t, model.DefaultTheme, prefs.Theme)
	assert.Equal(t, model.DefaultWallpaper, prefs.Wallpaper)
	assert.True(t, prefs.SoundEnabled)
	assert.Equal(t, model.DefaultVolume, prefs.Volume)

	require.NoError(t, db.Model(prefs).Update("volume", 7).Error)

	again, err := database.GetOrCreatePreferences(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 7, again.Volume)
	assert.Equal(t, int64(1), count(t, db, &model.UserPreference{}))
}
