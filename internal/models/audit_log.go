package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records one successful admin mutation routed through the gateway:
// report triage updates and appeal decisions.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ActorID    int64          `gorm:"not null;index" json:"actor_id"`
	ActorName  string         `gorm:"size:100" json:"actor_name"`
	Action     string         `gorm:"size:100;not null;index" json:"action"`
	TargetType string         `gorm:"size:50;not null" json:"target_type"`
	TargetID   int64          `gorm:"not null;index" json:"target_id"`
	Detail     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"detail"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}
