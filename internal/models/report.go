package models

import "time"

// TargetType names the kind of content a report points at.
type TargetType string

const (
	TargetPost    TargetType = "POST"
	TargetComment TargetType = "COMMENT"
)

func (t TargetType) Valid() bool {
	return t == TargetPost || t == TargetComment
}

// ReportReason is one of the standardized complaint categories.
type ReportReason string

const (
	ReasonSpam         ReportReason = "SPAM"
	ReasonAbuse        ReportReason = "ABUSE"
	ReasonHate         ReportReason = "HATE"
	ReasonSexual       ReportReason = "SEXUAL"
	ReasonIllegal      ReportReason = "ILLEGAL"
	ReasonPersonalInfo ReportReason = "PERSONAL_INFO"
	ReasonOther        ReportReason = "OTHER"
)

var knownReasons = map[ReportReason]struct{}{
	ReasonSpam:         {},
	ReasonAbuse:        {},
	ReasonHate:         {},
	ReasonSexual:       {},
	ReasonIllegal:      {},
	ReasonPersonalInfo: {},
	ReasonOther:        {},
}

func (r ReportReason) Valid() bool {
	_, ok := knownReasons[r]
	return ok
}

const (
	// MaxReportReasons caps how many reasons a single report may carry.
	MaxReportReasons = 3
	// MaxReportDescription caps the optional free-text description, in runes.
	MaxReportDescription = 100
)

// ReasonSet collects report reasons while enforcing the selection cap, so a
// fourth pick is refused at add time rather than at submit time. Duplicates
// are ignored.
type ReasonSet []ReportReason

func (s *ReasonSet) Add(r ReportReason) error {
	if !r.Valid() {
		return ErrUnknownReason
	}
	for _, have := range *s {
		if have == r {
			return nil
		}
	}
	if len(*s) >= MaxReportReasons {
		return ErrTooManyReasons
	}
	*s = append(*s, r)
	return nil
}

// ReportStatus is the triage state of a report.
type ReportStatus string

const (
	ReportPending     ReportStatus = "PENDING"
	ReportInReview    ReportStatus = "IN_REVIEW"
	ReportRejected    ReportStatus = "REJECTED"
	ReportActionTaken ReportStatus = "ACTION_TAKEN"
	ReportResolved    ReportStatus = "RESOLVED"

	// ReportFilterAll is a queue filter value, never a stored status.
	ReportFilterAll ReportStatus = "ALL"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportInReview, ReportRejected, ReportActionTaken, ReportResolved:
		return true
	}
	return false
}

// reportTransitions is the allowed triage flow. REJECTED and RESOLVED are
// terminal; the handling screen refuses anything not listed here before the
// upstream update is ever attempted.
var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportPending:     {ReportInReview, ReportRejected},
	ReportInReview:    {ReportRejected, ReportActionTaken, ReportResolved},
	ReportActionTaken: {ReportResolved},
}

func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range reportTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReportStatus) Terminal() bool {
	return len(reportTransitions[s]) == 0
}

// Report is a member's complaint against one piece of board content. The
// game service owns it; the gateway only reads it and forwards triage updates.
type Report struct {
	ID            int64          `json:"id"`
	TargetType    TargetType     `json:"target_type"`
	TargetID      int64          `json:"target_id"`
	ReporterName  string         `json:"reporter_name"`
	ReportedName  string         `json:"reported_name"`
	Reasons       []ReportReason `json:"reasons"`
	Description   string         `json:"description,omitempty"`
	Status        ReportStatus   `json:"status"`
	HandlerMemo   string         `json:"handler_memo,omitempty"`
	TargetSnippet string         `json:"target_snippet,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
