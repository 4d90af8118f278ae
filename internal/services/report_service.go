package services

import (
	"context"
	"unicode/utf8"

	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

// ReportService validates and submits member reports against board content.
type ReportService struct {
	api *gameapi.Client
}

func NewReportService(api *gameapi.Client) *ReportService {
	return &ReportService{api: api}
}

// ValidateSubmission runs every pre-network check: a known target, one to
// three known reasons, and a description within the cap. Nothing is sent
// upstream when any of these fail.
func ValidateSubmission(target models.TargetType, reasons []models.ReportReason, description string) (models.ReasonSet, error) {
	if !target.Valid() {
		return nil, models.ErrBadTarget
	}
	if len(reasons) == 0 {
		return nil, models.ErrNoReasons
	}

	var set models.ReasonSet
	for _, r := range reasons {
		if err := set.Add(r); err != nil {
			return nil, err
		}
	}

	if utf8.RuneCountInString(description) > models.MaxReportDescription {
		return nil, models.ErrDescriptionTooLong
	}
	return set, nil
}

// Submit files a report, routed to the post or comment endpoint by target
// type. The upstream {success, message} envelope is returned as-is; the
// handler substitutes a generic confirmation when the message is absent.
func (s *ReportService) Submit(ctx context.Context, v *viewer.Viewer, target models.TargetType, targetID int64, reasons []models.ReportReason, description string) (*gameapi.SubmitOutcome, error) {
	set, err := ValidateSubmission(target, reasons, description)
	if err != nil {
		return nil, err
	}

	return s.api.CreateReport(ctx, v.Token, target, targetID, gameapi.ReportSubmission{
		Reasons:     set,
		Description: description,
	})
}

// MyReports returns the viewer's reporter-side history.
func (s *ReportService) MyReports(ctx context.Context, v *viewer.Viewer) ([]models.Report, error) {
	return s.api.ListMyReports(ctx, v.Token)
}
