package models

import "time"

// AppealStatus is the resolution state of an appeal. APPROVED and REJECTED
// are terminal: an appeal is decided exactly once.
type AppealStatus string

const (
	AppealPending  AppealStatus = "PENDING"
	AppealApproved AppealStatus = "APPROVED"
	AppealRejected AppealStatus = "REJECTED"
)

func (s AppealStatus) Decided() bool {
	return s == AppealApproved || s == AppealRejected
}

// Appeal is a member's single challenge to one penalty. AdminResponse,
// ProcessedAt and ProcessedBy are set only once the status leaves PENDING.
type Appeal struct {
	ID            int64        `json:"id"`
	PenaltyID     int64        `json:"penalty_id"`
	MemberID      int64        `json:"member_id"`
	AppealReason  string       `json:"appeal_reason"`
	Status        AppealStatus `json:"status"`
	AdminResponse string       `json:"admin_response,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ProcessedAt   *time.Time   `json:"processed_at,omitempty"`
	ProcessedBy   string       `json:"processed_by,omitempty"`
}

// FindAppeal locates one appeal in a fetched collection by id. A miss is an
// ordinary result, not an error.
func FindAppeal(appeals []Appeal, id int64) (Appeal, bool) {
	for _, a := range appeals {
		if a.ID == id {
			return a, true
		}
	}
	return Appeal{}, false
}
