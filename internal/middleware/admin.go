package middleware

import (
	"strconv"
	"strings"

	"github.com/ardentiaonline/portal-gateway/internal/config"
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// AdminGate admits a request when any of these hold:
// 1. the operator token header matches the configured value
// 2. the viewer's member id is on the configured admin list
// 3. the viewer carries the ADMIN role from the game service
func AdminGate(cfg *config.Config, loc *localization.Localizer) fiber.Handler {
	adminIDs := parseCSV(cfg.AdminMemberIDs)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		v, ok := viewer.FromCtx(c)
		if !ok {
			return authRequired(c, loc)
		}

		if contains(adminIDs, strconv.FormatInt(v.MemberID, 10)) || v.IsAdmin() {
			return c.Next()
		}

		lang := localization.PickLanguage(c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error:   true,
			Code:    "forbidden",
			Message: loc.Message(lang, "error.forbidden"),
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
