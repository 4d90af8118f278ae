package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PenaltyType is the severity class of a sanction.
type PenaltyType string

const (
	PenaltyWarning    PenaltyType = "WARNING"
	PenaltySuspension PenaltyType = "SUSPENSION"
	PenaltyPermanent  PenaltyType = "PERMANENT"
)

// MinAppealReason is the minimum appeal text length, in runes, after trimming.
const MinAppealReason = 10

// Penalty is a sanction the game service issued against the current member.
// EndDate is nil for indefinite sanctions. CanAppeal and AppealSubmitted are
// computed upstream; the gateway treats them as authoritative eligibility.
type Penalty struct {
	ID              int64       `json:"id"`
	Type            PenaltyType `json:"type"`
	Reason          string      `json:"reason"`
	Description     string      `json:"description,omitempty"`
	Evidence        string      `json:"evidence,omitempty"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         *time.Time  `json:"end_date,omitempty"`
	IsActive        bool        `json:"is_active"`
	CanAppeal       bool        `json:"can_appeal"`
	AppealSubmitted bool        `json:"appeal_submitted"`
}

// Appealable reports whether the appeal action should be offered at all:
// the window must be open and no appeal may exist yet.
func (p Penalty) Appealable() bool {
	return p.CanAppeal && !p.AppealSubmitted
}

// ValidateAppealReason enforces the minimum appeal text length.
func ValidateAppealReason(reason string) error {
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinAppealReason {
		return ErrAppealTooShort
	}
	return nil
}
