package handlers

import (
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// PenaltyHandler serves the member's penalty history and appeal form.
type PenaltyHandler struct {
	penalties *services.PenaltyService
	loc       *localization.Localizer
}

func NewPenaltyHandler(penalties *services.PenaltyService, loc *localization.Localizer) *PenaltyHandler {
	return &PenaltyHandler{penalties: penalties, loc: loc}
}

func (h *PenaltyHandler) ListMine(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	penalties, err := h.penalties.ListMine(c.Context(), v)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(dto.PenaltyListResponse{Penalties: penalties})
}

func (h *PenaltyHandler) Detail(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	penaltyID, ok := parseID(c, "penaltyId")
	if !ok {
		return badBody(c, h.loc)
	}

	detail, err := h.penalties.Detail(c.Context(), v, penaltyID)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(detail)
}

func (h *PenaltyHandler) SubmitAppeal(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	penaltyID, ok := parseID(c, "penaltyId")
	if !ok {
		return badBody(c, h.loc)
	}

	var req dto.CreateAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.loc)
	}

	outcome, err := h.penalties.SubmitAppeal(c.Context(), v, penaltyID, req.AppealReason)
	if err != nil {
		return fail(c, h.loc, err)
	}

	message := outcome.Message
	if message == "" {
		message = h.loc.Message(lang(c), "appeal.submitted")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReportOutcomeResponse{
		Success: outcome.Success,
		Message: message,
	})
}
