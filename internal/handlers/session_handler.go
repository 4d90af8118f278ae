package handlers

import (
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// SessionHandler exchanges game-API credentials for portal sessions. The
// login form itself lives elsewhere; this is only the storage side of
// "remember me".
type SessionHandler struct {
	sessions *services.SessionService
	loc      *localization.Localizer
}

func NewSessionHandler(sessions *services.SessionService, loc *localization.Localizer) *SessionHandler {
	return &SessionHandler{sessions: sessions, loc: loc}
}

func (h *SessionHandler) Establish(c *fiber.Ctx) error {
	var req dto.EstablishSessionRequest
	if err := c.BodyParser(&req); err != nil || req.AccessToken == "" {
		return badBody(c, h.loc)
	}

	est, err := h.sessions.Establish(c.Context(), req.AccessToken, req.RememberMe)
	if err != nil {
		return fail(c, h.loc, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{
		SessionToken: est.SessionToken,
		MemberID:     est.MemberID,
		Nickname:     est.Nickname,
		Roles:        est.Roles,
	})
}

func (h *SessionHandler) Destroy(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwtlib.Token)
	if !ok || token == nil {
		return fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return fiber.ErrUnauthorized
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return fiber.ErrUnauthorized
	}

	if err := h.sessions.Destroy(c.Context(), sid); err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(dto.MessageResponse{Message: "session ended"})
}
