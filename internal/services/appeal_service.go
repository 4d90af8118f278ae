package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ardentiaonline/portal-gateway/internal/audit"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

var (
	ErrAppealNotFound = errors.New("appeal not found")
	ErrAppealDecided  = errors.New("appeal already processed")
)

// AppealService backs the admin review console.
type AppealService struct {
	api   *gameapi.Client
	audit *audit.Recorder
}

func NewAppealService(api *gameapi.Client, rec *audit.Recorder) *AppealService {
	return &AppealService{api: api, audit: rec}
}

// List returns the full appeal collection.
func (s *AppealService) List(ctx context.Context, v *viewer.Viewer) ([]models.Appeal, error) {
	return s.api.ListAppeals(ctx, v.Token)
}

// Locate fetches one appeal directly by id. A missing appeal is an ordinary
// (nil, false, nil) result so the console can render its terminal not-found
// state instead of an error page.
func (s *AppealService) Locate(ctx context.Context, v *viewer.Viewer, id int64) (*models.Appeal, bool, error) {
	appeal, err := s.api.GetAppeal(ctx, v.Token, id)
	if gameapi.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return appeal, true, nil
}

// Process records the admin's terminal decision. The rationale must be
// non-empty, and a decided appeal is immutable: both checks run before any
// upstream call.
func (s *AppealService) Process(ctx context.Context, v *viewer.Viewer, id int64, approve bool, adminResponse string) error {
	if strings.TrimSpace(adminResponse) == "" {
		return models.ErrEmptyRationale
	}

	appeal, found, err := s.Locate(ctx, v, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAppealNotFound
	}
	if appeal.Status.Decided() {
		return ErrAppealDecided
	}

	if err := s.api.ProcessAppeal(ctx, v.Token, id, gameapi.AppealDecision{
		Approve:       approve,
		AdminResponse: adminResponse,
	}); err != nil {
		return err
	}

	s.audit.Record(ctx, v, audit.ActionAppealDecision, "APPEAL", id, map[string]any{
		"approve": approve,
		"penalty": appeal.PenaltyID,
	})
	return nil
}
