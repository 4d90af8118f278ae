package gameapi

import (
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/models"
)

// CommentNode is the nested wire shape of a board comment: a top-level
// comment carries its direct replies inline. The board service flattens this
// before anything renders it.
type CommentNode struct {
	ID              int64         `json:"id"`
	Content         string        `json:"content"`
	WriterName      string        `json:"writer_name"`
	LikeCount       int           `json:"like_count"`
	ParentCommentID *int64        `json:"parent_comment_id"`
	CreatedAt       time.Time     `json:"created_at"`
	Replies         []CommentNode `json:"replies,omitempty"`
}

// LikeState is the server's authoritative like truth after a toggle.
type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// SubmitOutcome is the {success, message} envelope mutating endpoints return.
type SubmitOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReportSubmission is the body of a new report.
type ReportSubmission struct {
	Reasons     []models.ReportReason `json:"reasons"`
	Description string                `json:"description,omitempty"`
}

// ReportUpdate is an admin triage change: new status plus optional memo.
type ReportUpdate struct {
	Status      models.ReportStatus `json:"status"`
	HandlerMemo string              `json:"handler_memo,omitempty"`
}

// AppealSubmission is the body of a new appeal.
type AppealSubmission struct {
	AppealReason string `json:"appeal_reason"`
}

// AppealDecision is the admin's terminal call on an appeal.
type AppealDecision struct {
	Approve       bool   `json:"approve"`
	AdminResponse string `json:"admin_response"`
}

// Identity describes the bearer-token holder as the game service sees them.
type Identity struct {
	MemberID int64    `json:"member_id"`
	Nickname string   `json:"nickname"`
	Roles    []string `json:"roles"`
}

type errorBody struct {
	Message string `json:"message"`
}
