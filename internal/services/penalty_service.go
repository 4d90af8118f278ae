package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

var (
	ErrPenaltyNotFound  = errors.New("penalty not found")
	ErrAppealNotAllowed = errors.New("penalty cannot be appealed")
)

// PenaltyService backs the member-facing penalty history and appeal form.
type PenaltyService struct {
	api *gameapi.Client
}

func NewPenaltyService(api *gameapi.Client) *PenaltyService {
	return &PenaltyService{api: api}
}

// ListMine returns the viewer's penalties with their server-computed
// eligibility flags intact.
func (s *PenaltyService) ListMine(ctx context.Context, v *viewer.Viewer) ([]models.Penalty, error) {
	return s.api.ListMyPenalties(ctx, v.Token)
}

// PenaltyDetail is one penalty plus its appeal, when one exists and could be
// fetched.
type PenaltyDetail struct {
	Penalty models.Penalty `json:"penalty"`
	Appeal  *models.Appeal `json:"appeal,omitempty"`
}

// Detail resolves one of the viewer's penalties. When the penalty says an
// appeal was submitted, a secondary fetch retrieves it; if that fetch fails
// the detail degrades to the penalty alone rather than erroring out.
func (s *PenaltyService) Detail(ctx context.Context, v *viewer.Viewer, penaltyID int64) (*PenaltyDetail, error) {
	penalties, err := s.api.ListMyPenalties(ctx, v.Token)
	if err != nil {
		return nil, err
	}

	var penalty *models.Penalty
	for i := range penalties {
		if penalties[i].ID == penaltyID {
			penalty = &penalties[i]
			break
		}
	}
	if penalty == nil {
		return nil, ErrPenaltyNotFound
	}

	detail := &PenaltyDetail{Penalty: *penalty}
	if penalty.AppealSubmitted {
		appeal, err := s.api.GetPenaltyAppeal(ctx, v.Token, penaltyID)
		if err != nil {
			slog.Warn("appeal fetch failed, showing penalty alone",
				"penalty_id", penaltyID, "error", err)
		} else {
			detail.Appeal = appeal
		}
	}
	return detail, nil
}

// SubmitAppeal files the viewer's single appeal for a penalty. Eligibility is
// re-checked against a fresh upstream fetch; the disabled button in the
// browser is advisory only and never the enforcement point.
func (s *PenaltyService) SubmitAppeal(ctx context.Context, v *viewer.Viewer, penaltyID int64, reason string) (*gameapi.SubmitOutcome, error) {
	if err := models.ValidateAppealReason(reason); err != nil {
		return nil, err
	}

	penalties, err := s.api.ListMyPenalties(ctx, v.Token)
	if err != nil {
		return nil, err
	}
	var penalty *models.Penalty
	for i := range penalties {
		if penalties[i].ID == penaltyID {
			penalty = &penalties[i]
			break
		}
	}
	if penalty == nil {
		return nil, ErrPenaltyNotFound
	}
	if !penalty.Appealable() {
		return nil, ErrAppealNotAllowed
	}

	return s.api.CreateAppeal(ctx, v.Token, penaltyID, gameapi.AppealSubmission{
		AppealReason: reason,
	})
}
