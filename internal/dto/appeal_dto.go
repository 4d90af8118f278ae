package dto

type CreateAppealRequest struct {
	AppealReason string `json:"appeal_reason"`
}

type ProcessAppealRequest struct {
	Approve       *bool  `json:"approve"`
	AdminResponse string `json:"admin_response"`
}
