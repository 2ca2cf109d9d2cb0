package cron

import (
	"testing"
	"time"

	"github.com/sahilchouksey/pixel-portfolio/database/dbtest"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeRecycleBin(t *testing.T) {
	store := dbtest.NewStore(t)
	db := store.GetDB()
	m := NewCronManager(store, Options{RecycleRetentionDays: 30})

	old := time.Now().AddDate(0, 0, -31)
	recent := time.Now().AddDate(0, 0, -1)
	notes := []model.Note{
		{Title: "old", IsDeleted: true, DeletedOn: &old},
		{Title: "recent", IsDeleted: true, DeletedOn: &recent},
		{Title: "live"},
	}
	require.NoError(t, db.Create(&notes).Error)

	result, err := m.PurgeRecycleBin()
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Metadata["purged"])

	var titles []string
	require.NoError(t, db.Model(&model.Note{}).Order("id").Pluck("title", &titles).Error)
	assert.Equal(t, []string{"recent", "live"}, titles)
}

func TestPurgeRecycleBinDisabled(t *testing.T) {
	store := dbtest.NewStore(t)
	old := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, store.GetDB().Create(&model.Note{Title: "old", IsDeleted: true, DeletedOn: &old}).Error)

	_, err := NewCronManager(store, Options{}).PurgeRecycleBin()
	require.NoError(t, err)

	var count int64
	require.NoError(t, store.GetDB().Model(&model.Note{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunRecordsJobLog(t *testing.T) {
	store := dbtest.NewStore(t)
	db := store.GetDB()
	require.NoError(t, db.Create(&model.JWTTokenBlacklist{
		Token: "expired", UserID: 1, Reason: "logout", ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	m := NewCronManager(store, Options{})
	m.run(JobCleanupExpiredTokens, m.CleanupExpiredTokens)

	var entry model.CronJobLog
	require.NoError(t, db.Where("job_name = ?", JobCleanupExpiredTokens).First(&entry).Error)
	assert.Equal(t, model.CronStatusCompleted, entry.Status)
	assert.Equal(t, "Removed 1 expired tokens", entry.Message)
	assert.NotNil(t, entry.CompletedAt)

	var remaining int64
	require.NoError(t, db.Model(&model.JWTTokenBlacklist{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestOptimizeJob(t *testing.T) {
	store := dbtest.NewStore(t)
	m := NewCronManager(store, Options{})

	result, err := m.OptimizeDatabase()
	require.NoError(t, err)
	assert.Equal(t, 5, result.Metadata["indexes"])
}
