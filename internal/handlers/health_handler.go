package handlers

import (
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/database"
	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/session"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	api      *gameapi.Client
	sessions *session.Store
}

func NewHealthHandler(api *gameapi.Client, sessions *session.Store) *HealthHandler {
	return &HealthHandler{api: api, sessions: sessions}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "ok",
		Redis:     "ok",
		GameAPI:   "ok",
	}

	if err := database.Ping(); err != nil {
		resp.Status = "degraded"
		resp.DB = "down"
	}
	if err := h.sessions.Ping(c.Context()); err != nil {
		resp.Status = "degraded"
		resp.Redis = "down"
	}
	if err := h.api.Ping(c.Context()); err != nil {
		resp.Status = "degraded"
		resp.GameAPI = "down"
	}

	code := fiber.StatusOK
	if resp.Status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(resp)
}
