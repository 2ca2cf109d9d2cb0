package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilchouksey/pixel-portfolio/database"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/utils/auth"
)

// CleanupExpiredTokens removes revoked tokens that have expired anyway
func (m *CronManager) CleanupExpiredTokens() (*JobResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := auth.NewBlacklistService(m.db).CleanupExpiredTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cleanup token blacklist: %w", err)
	}

	return &JobResult{
		Message:  fmt.Sprintf("Removed %d expired tokens", removed),
		Metadata: map[string]interface{}{"removed": removed},
	}, nil
}

// PurgeRecycleBin hard-deletes notes that have sat in the recycle bin for
// longer than the retention period
func (m *CronManager) PurgeRecycleBin() (*JobResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if m.opts.RecycleRetentionDays <= 0 {
		return &JobResult{Message: "Recycle bin retention disabled"}, nil
	}

	cutoff := time.Now().AddDate(0, 0, -m.opts.RecycleRetentionDays)
	result := m.db.WithContext(ctx).
		Where("is_deleted = ? AND deleted_on IS NOT NULL AND deleted_on < ?", true, cutoff).
		Delete(&model.Note{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to purge recycle bin: %w", result.Error)
	}

	return &JobResult{
		Message: fmt.Sprintf("Purged %d notes deleted before %s", result.RowsAffected, cutoff.Format(time.DateOnly)),
		Metadata: map[string]interface{}{
			"purged":         result.RowsAffected,
			"retention_days": m.opts.RecycleRetentionDays,
		},
	}, nil
}

// OptimizeDatabase runs the same routine as cmd/optimize
func (m *CronManager) OptimizeDatabase() (*JobResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := database.NewOptimizer(m.store).Run(ctx)
	if err != nil {
		return nil, err
	}

	return &JobResult{
		Message: fmt.Sprintf("Ensured %d indexes, analyzed %d tables", report.IndexesEnsured, report.TablesAnalyzed),
		Metadata: map[string]interface{}{
			"indexes":    report.IndexesEnsured,
			"tables":     report.TablesAnalyzed,
			"size_bytes": report.SizeBytes,
		},
	}, nil
}
