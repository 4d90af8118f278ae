package handlers

import (
	"log/slog"
	"strings"

	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// ModerationHandler serves the admin report queue and detail screens.
type ModerationHandler struct {
	moderation *services.ModerationService
	loc        *localization.Localizer
}

func NewModerationHandler(moderation *services.ModerationService, loc *localization.Localizer) *ModerationHandler {
	return &ModerationHandler{moderation: moderation, loc: loc}
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	filter := models.ReportStatus(strings.ToUpper(c.Query("status", string(models.ReportFilterAll))))
	reports, err := h.moderation.Queue(c.Context(), v, filter)
	if err != nil {
		return fail(c, h.loc, err)
	}

	return c.JSON(dto.ReportQueueResponse{
		Reports: reports,
		Filter:  filter,
		Total:   len(reports),
	})
}

func reportKey(c *fiber.Ctx) (models.TargetType, int64, bool) {
	target := models.TargetType(strings.ToUpper(c.Params("targetType")))
	id, ok := parseID(c, "reportId")
	return target, id, ok && target.Valid()
}

func (h *ModerationHandler) GetReport(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	target, id, ok := reportKey(c)
	if !ok {
		return badBody(c, h.loc)
	}

	report, err := h.moderation.Report(c.Context(), v, target, id)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(report)
}

func (h *ModerationHandler) UpdateReport(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	target, id, ok := reportKey(c)
	if !ok {
		return badBody(c, h.loc)
	}

	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.loc)
	}

	if err := h.moderation.Update(c.Context(), v, target, id, req.Status, req.HandlerMemo); err != nil {
		return fail(c, h.loc, err)
	}

	slog.Info("report status updated",
		"member_id", v.MemberID, "action", "report.status_update",
		"target", string(target), "report_id", id, "status", string(req.Status))
	return c.JSON(dto.MessageResponse{Message: h.loc.Message(lang(c), "moderation.updated")})
}
