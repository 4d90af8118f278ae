package handlers

import (
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the member-facing report submission surface.
type ReportHandler struct {
	reports *services.ReportService
	loc     *localization.Localizer
}

func NewReportHandler(reports *services.ReportService, loc *localization.Localizer) *ReportHandler {
	return &ReportHandler{reports: reports, loc: loc}
}

func (h *ReportHandler) ReportPost(c *fiber.Ctx) error {
	return h.submit(c, models.TargetPost, "postId")
}

func (h *ReportHandler) ReportComment(c *fiber.Ctx) error {
	return h.submit(c, models.TargetComment, "commentId")
}

func (h *ReportHandler) submit(c *fiber.Ctx, target models.TargetType, param string) error {
	targetID, ok := parseID(c, param)
	if !ok {
		return badBody(c, h.loc)
	}
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, h.loc)
	}

	outcome, err := h.reports.Submit(c.Context(), v, target, targetID, req.Reasons, req.Description)
	if err != nil {
		return fail(c, h.loc, err)
	}

	// An empty upstream message falls back to the generic confirmation.
	message := outcome.Message
	if message == "" {
		message = h.loc.Message(lang(c), "report.submitted")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReportOutcomeResponse{
		Success: outcome.Success,
		Message: message,
	})
}

func (h *ReportHandler) MyReports(c *fiber.Ctx) error {
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	reports, err := h.reports.MyReports(c.Context(), v)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(fiber.Map{"reports": reports, "total": len(reports)})
}
