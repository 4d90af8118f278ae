package dto

import "github.com/ardentiaonline/portal-gateway/internal/models"

type CreateReportRequest struct {
	Reasons     []models.ReportReason `json:"reasons"`
	Description string                `json:"description,omitempty"`
}

type ReportOutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UpdateReportRequest struct {
	Status      models.ReportStatus `json:"status"`
	HandlerMemo string              `json:"handler_memo,omitempty"`
}

type ReportQueueResponse struct {
	Reports []models.Report     `json:"reports"`
	Filter  models.ReportStatus `json:"filter"`
	Total   int                 `json:"total"`
}
