package middleware

import (
	"errors"

	"github.com/ardentiaonline/portal-gateway/internal/config"
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/session"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func authRequired(c *fiber.Ctx, loc *localization.Localizer) error {
	lang := localization.PickLanguage(c.Get(fiber.HeaderAcceptLanguage))
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    "auth_required",
		Message: loc.Message(lang, "error.auth_required"),
	})
}

// SessionProtected verifies the gateway session JWT. A missing or expired
// token short-circuits to the authentication prompt before any mutating call
// can run.
func SessionProtected(cfg *config.Config, loc *localization.Localizer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return authRequired(c, loc)
		},
	})
}

func sessionID(token *jwt.Token) (string, bool) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}

// LoadViewer resolves the session behind a verified token into an explicit
// viewer value and attaches it to the request. Runs after SessionProtected.
func LoadViewer(sessions *services.SessionService, loc *localization.Localizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return authRequired(c, loc)
		}
		sid, ok := sessionID(token)
		if !ok {
			return authRequired(c, loc)
		}

		v, err := sessions.Resolve(c.Context(), sid)
		if errors.Is(err, session.ErrNotFound) {
			return authRequired(c, loc)
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session lookup failed")
		}

		viewer.Store(c, v)
		return c.Next()
	}
}

// OptionalViewer attaches a viewer when a valid session accompanies the
// request and lets anonymous requests through untouched. Read-only board
// views use this; the like toggle does not.
func OptionalViewer(cfg *config.Config, sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) < 8 || header[:7] != "Bearer " {
			return c.Next()
		}

		token, err := jwt.Parse(header[7:], func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}
		sid, ok := sessionID(token)
		if !ok {
			return c.Next()
		}
		if v, err := sessions.Resolve(c.Context(), sid); err == nil {
			viewer.Store(c, v)
		}
		return c.Next()
	}
}
