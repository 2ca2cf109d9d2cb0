package cron

import (
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job names as recorded in cron_job_logs
const (
	JobOptimizeDatabase     = "optimize_database"
	JobCleanupExpiredTokens = "cleanup_expired_tokens"
	JobPurgeRecycleBin      = "purge_recycle_bin"
)

// Options tune the scheduled jobs
type Options struct {
	// RecycleRetentionDays is how long soft-deleted notes are kept. Zero
	// disables the purge job.
	RecycleRetentionDays int
}

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron  *cron.Cron
	store database.Storage
	db    *gorm.DB
	opts  Options
}

// NewCronManager creates a new cron manager
func NewCronManager(store database.Storage, opts Options) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:  c,
		store: store,
		db:    store.GetDB(),
		opts:  opts,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: drop expired entries from the token blacklist
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.run(JobCleanupExpiredTokens, m.CleanupExpiredTokens)
	})
	if err != nil {
		return err
	}

	// 2. Daily at 3 AM: purge old recycle bin entries
	if m.opts.RecycleRetentionDays > 0 {
		_, err = m.cron.AddFunc("0 0 3 * * *", func() {
			m.run(JobPurgeRecycleBin, m.PurgeRecycleBin)
		})
		if err != nil {
			return err
		}
	}

	// 3. Daily at 4 AM: indexes and planner statistics
	_, err = m.cron.AddFunc("0 0 4 * * *", func() {
		m.run(JobOptimizeDatabase, m.OptimizeDatabase)
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// JobResult is what a job reports on success
type JobResult struct {
	Message  string
	Metadata map[string]interface{}
}

// run executes a job and records its outcome in cron_job_logs
func (m *CronManager) run(jobName string, job func() (*JobResult, error)) {
	entry := m.logJobStart(jobName)

	result, err := job()
	if err != nil {
		m.logJobError(entry, err)
		return
	}
	m.logJobComplete(entry, result)
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) *model.CronJobLog {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	cronLog := &model.CronJobLog{
		JobName:   jobName,
		Status:    model.CronStatusRunning,
		StartedAt: time.Now(),
		Metadata:  datatypes.JSON("{}"),
	}
	if err := m.db.Create(cronLog).Error; err != nil {
		log.Printf("[CRON] Failed to record start of %s: %v", jobName, err)
	}
	return cronLog
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(entry *model.CronJobLog, result *JobResult) {
	log.Printf("[CRON] Completed job: %s - %s", entry.JobName, result.Message)

	metadata := datatypes.JSON("{}")
	if len(result.Metadata) > 0 {
		if data, err := json.Marshal(result.Metadata); err == nil {
			metadata = data
		}
	}

	m.finish(entry, map[string]interface{}{
		"status":   model.CronStatusCompleted,
		"message":  result.Message,
		"metadata": metadata,
	})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(entry *model.CronJobLog, err error) {
	log.Printf("[CRON] Error in job: %s - %v", entry.JobName, err)

	m.finish(entry, map[string]interface{}{
		"status":    model.CronStatusFailed,
		"error_msg": err.Error(),
	})
}

func (m *CronManager) finish(entry *model.CronJobLog, updates map[string]interface{}) {
	if entry.ID == 0 {
		return
	}
	now := time.Now()
	updates["completed_at"] = now
	updates["duration"] = now.Sub(entry.StartedAt).Milliseconds()

	if err := m.db.Model(entry).Updates(updates).Error; err != nil {
		log.Printf("[CRON] Failed to record result of %s: %v", entry.JobName, err)
	}
}
