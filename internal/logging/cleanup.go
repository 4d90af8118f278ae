package logging

import (
	"log/slog"
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that deletes system_logs and
// audit_logs past their retention windows (30 and 180 days).
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logCutoff := time.Now().AddDate(0, 0, -30)
				result := db.Where("timestamp < ?", logCutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}

				auditCutoff := time.Now().AddDate(0, 0, -180)
				result = db.Where("created_at < ?", auditCutoff).Delete(&models.AuditLog{})
				if result.Error != nil {
					slog.Error("audit cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("audit cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
