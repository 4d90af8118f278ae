// Package audit records successful admin mutations to the gateway's local
// audit_logs table. The trail is best-effort: a failed write is logged and
// never fails the admin action itself.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionReportUpdate   = "report.status_update"
	ActionAppealDecision = "appeal.decision"
)

type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record persists one admin action. A nil recorder is a no-op so tests can
// run services without a database.
func (r *Recorder) Record(ctx context.Context, actor *viewer.Viewer, action, targetType string, targetID int64, detail map[string]any) {
	if r == nil || r.db == nil {
		return
	}

	entry := models.AuditLog{
		ID:         uuid.New(),
		ActorID:    actor.MemberID,
		ActorName:  actor.Nickname,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if len(detail) > 0 {
		if b, err := json.Marshal(detail); err == nil {
			entry.Detail = datatypes.JSON(b)
		}
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		slog.Error("audit record failed", "action", action, "error", err)
	}
}
