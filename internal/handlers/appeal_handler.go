package handlers

import (
	"log/slog"

	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// AppealHandler serves the admin appeal review console.
type AppealHandler struct {
	appeals *services.AppealService
	loc     *localization.Localizer
}

func NewAppealHandler(appeals *services.AppealService, loc *localization.Localizer) *AppealHandler {
	return &AppealHandler{appeals: appeals, loc: loc}
}

func (h *AppealHandler) ListAppeals(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	appeals, err := h.appeals.List(c.Context(), v)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(fiber.Map{"appeals": appeals, "total": len(appeals)})
}

// GetAppeal renders one appeal. A miss is the console's terminal not-found
// state, delivered as an ordinary 404 body rather than an error page.
func (h *AppealHandler) GetAppeal(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	appealID, ok := parseID(c, "appealId")
	if !ok {
		return badBody(c, h.loc)
	}

	appeal, found, err := h.appeals.Locate(c.Context(), v, appealID)
	if err != nil {
		return fail(c, h.loc, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   true,
			Code:    "appeal.not_found",
			Message: h.loc.Message(lang(c), "appeal.not_found"),
		})
	}
	return c.JSON(appeal)
}

func (h *AppealHandler) ProcessAppeal(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	appealID, ok := parseID(c, "appealId")
	if !ok {
		return badBody(c, h.loc)
	}

	var req dto.ProcessAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.loc)
	}
	// The binary decision must be explicit; an absent field is not a reject.
	if req.Approve == nil {
		return badBody(c, h.loc)
	}

	if err := h.appeals.Process(c.Context(), v, appealID, *req.Approve, req.AdminResponse); err != nil {
		return fail(c, h.loc, err)
	}

	slog.Info("appeal processed",
		"member_id", v.MemberID, "action", "appeal.decision",
		"appeal_id", appealID, "approve", *req.Approve)
	return c.JSON(dto.MessageResponse{Message: h.loc.Message(lang(c), "appeal.processed")})
}
