package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardentiaonline/portal-gateway/internal/audit"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

var ErrReportNotFound = errors.New("report not found")

// ModerationService backs the admin report queue: list, detail, and triage
// updates guarded by the status transition table.
type ModerationService struct {
	api   *gameapi.Client
	audit *audit.Recorder
}

func NewModerationService(api *gameapi.Client, rec *audit.Recorder) *ModerationService {
	return &ModerationService{api: api, audit: rec}
}

// Queue fetches the full report collection once and filters it in memory by
// status. Filtering is presentation-only and never re-queries upstream.
func (s *ModerationService) Queue(ctx context.Context, v *viewer.Viewer, filter models.ReportStatus) ([]models.Report, error) {
	reports, err := s.api.ListReports(ctx, v.Token, "")
	if err != nil {
		return nil, err
	}

	if filter == "" || filter == models.ReportFilterAll {
		return reports, nil
	}
	if !filter.Valid() {
		return nil, models.ErrBadStatus
	}

	filtered := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if r.Status == filter {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Report fetches one report by its composite key.
func (s *ModerationService) Report(ctx context.Context, v *viewer.Viewer, target models.TargetType, id int64) (*models.Report, error) {
	if !target.Valid() {
		return nil, models.ErrBadTarget
	}
	report, err := s.api.GetReport(ctx, v.Token, target, id)
	if gameapi.IsNotFound(err) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Update applies a triage decision. The current status is fetched fresh and
// the transition table consulted before anything is sent upstream, so a
// disallowed move never reaches the game service.
func (s *ModerationService) Update(ctx context.Context, v *viewer.Viewer, target models.TargetType, id int64, status models.ReportStatus, memo string) error {
	if !status.Valid() {
		return models.ErrBadStatus
	}

	current, err := s.Report(ctx, v, target, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", models.ErrBadTransition, current.Status, status)
	}

	if err := s.api.UpdateReport(ctx, v.Token, target, id, gameapi.ReportUpdate{
		Status:      status,
		HandlerMemo: memo,
	}); err != nil {
		return err
	}

	s.audit.Record(ctx, v, audit.ActionReportUpdate, string(target), id, map[string]any{
		"from":   current.Status,
		"to":     status,
		"report": id,
	})
	return nil
}
