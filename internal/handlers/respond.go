package handlers

import (
	"errors"

	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/gofiber/fiber/v2"
)

type failure struct {
	status int
	code   string
}

// validationFailures are rejected before any upstream call was made.
var validationFailures = map[error]failure{
	models.ErrNoReasons:          {fiber.StatusBadRequest, "report.no_reasons"},
	models.ErrTooManyReasons:     {fiber.StatusBadRequest, "report.too_many_reasons"},
	models.ErrUnknownReason:      {fiber.StatusBadRequest, "report.unknown_reason"},
	models.ErrDescriptionTooLong: {fiber.StatusBadRequest, "report.description_too_long"},
	models.ErrBadTarget:          {fiber.StatusBadRequest, "error.bad_request"},
	models.ErrBadStatus:          {fiber.StatusBadRequest, "moderation.bad_status"},
	models.ErrBadTransition:      {fiber.StatusConflict, "moderation.bad_transition"},
	models.ErrAppealTooShort:     {fiber.StatusBadRequest, "appeal.too_short"},
	models.ErrEmptyRationale:     {fiber.StatusBadRequest, "appeal.empty_rationale"},

	services.ErrReportNotFound:   {fiber.StatusNotFound, "error.not_found"},
	services.ErrPenaltyNotFound:  {fiber.StatusNotFound, "error.not_found"},
	services.ErrAppealNotFound:   {fiber.StatusNotFound, "appeal.not_found"},
	services.ErrAppealNotAllowed: {fiber.StatusConflict, "appeal.not_allowed"},
	services.ErrAppealDecided:    {fiber.StatusConflict, "appeal.already_processed"},
}

// upstreamFailures keys the fixed category taxonomy: each upstream status
// class gets its own user-facing message, and transport failures stay
// distinct from upstream 5xx.
var upstreamFailures = map[gameapi.ErrorKind]failure{
	gameapi.KindBadRequest:   {fiber.StatusBadRequest, "error.bad_request"},
	gameapi.KindUnauthorized: {fiber.StatusUnauthorized, "auth_required"},
	gameapi.KindForbidden:    {fiber.StatusForbidden, "error.forbidden"},
	gameapi.KindNotFound:     {fiber.StatusNotFound, "error.not_found"},
	gameapi.KindConflict:     {fiber.StatusConflict, "error.conflict"},
	gameapi.KindServer:       {fiber.StatusBadGateway, "error.server"},
	gameapi.KindUnreachable:  {fiber.StatusServiceUnavailable, "error.unreachable"},
}

func messageKey(code string) string {
	if code == "auth_required" {
		return "error.auth_required"
	}
	return code
}

// fail renders any service error as the uniform localized envelope.
func fail(c *fiber.Ctx, loc *localization.Localizer, err error) error {
	lang := localization.PickLanguage(c.Get(fiber.HeaderAcceptLanguage))

	for sentinel, f := range validationFailures {
		if errors.Is(err, sentinel) {
			return c.Status(f.status).JSON(dto.ErrorResponse{
				Error:   true,
				Code:    f.code,
				Message: loc.Message(lang, messageKey(f.code)),
			})
		}
	}

	var apiErr *gameapi.APIError
	if errors.As(err, &apiErr) {
		f := upstreamFailures[apiErr.Kind]
		return c.Status(f.status).JSON(dto.ErrorResponse{
			Error:   true,
			Code:    f.code,
			Message: loc.Message(lang, messageKey(f.code)),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    "error.server",
		Message: loc.Message(lang, "error.server"),
	})
}

func badBody(c *fiber.Ctx, loc *localization.Localizer) error {
	lang := localization.PickLanguage(c.Get(fiber.HeaderAcceptLanguage))
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    "error.bad_request",
		Message: loc.Message(lang, "error.bad_request"),
	})
}

func lang(c *fiber.Ctx) string {
	return localization.PickLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
