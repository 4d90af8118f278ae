package routes

import (
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/config"
	"github.com/ardentiaonline/portal-gateway/internal/handlers"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/middleware"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	loc *localization.Localizer,
	sessions *services.SessionService,
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
	boardHandler *handlers.BoardHandler,
	reportHandler *handlers.ReportHandler,
	penaltyHandler *handlers.PenaltyHandler,
	moderationHandler *handlers.ModerationHandler,
	appealHandler *handlers.AppealHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Session exchange: stricter limit, same as an auth surface
	sessionGroup := api.Group("/session")
	sessionGroup.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	sessionGroup.Post("/", sessionHandler.Establish)
	sessionGroup.Delete("/", middleware.SessionProtected(cfg, loc), sessionHandler.Destroy)

	protect := []fiber.Handler{
		middleware.SessionProtected(cfg, loc),
		middleware.LoadViewer(sessions, loc),
	}

	// Board: the thread view is readable anonymously, like toggles are not
	api.Get("/board/posts/:postId/comments", middleware.OptionalViewer(cfg, sessions), boardHandler.GetThread)
	api.Post("/board/posts/:postId/like", protect[0], protect[1], boardHandler.TogglePostLike)
	api.Post("/board/comments/:commentId/like", protect[0], protect[1], boardHandler.ToggleCommentLike)

	// Member report endpoints (protected)
	api.Post("/board/posts/:postId/reports", protect[0], protect[1], reportHandler.ReportPost)
	api.Post("/board/comments/:commentId/reports", protect[0], protect[1], reportHandler.ReportComment)

	// My page (protected)
	me := api.Group("/me", protect[0], protect[1])
	me.Get("/reports", reportHandler.MyReports)
	me.Get("/penalties", penaltyHandler.ListMine)
	me.Get("/penalties/:penaltyId", penaltyHandler.Detail)
	me.Post("/penalties/:penaltyId/appeal", penaltyHandler.SubmitAppeal)

	// Admin back-office (protected + admin gate)
	admin := api.Group("/admin", protect[0], protect[1], middleware.AdminGate(cfg, loc))
	admin.Get("/reports", moderationHandler.ListReports)
	admin.Get("/reports/:targetType/:reportId", moderationHandler.GetReport)
	admin.Patch("/reports/:targetType/:reportId", moderationHandler.UpdateReport)
	admin.Get("/appeals", appealHandler.ListAppeals)
	admin.Get("/appeals/:appealId", appealHandler.GetAppeal)
	admin.Post("/appeals/:appealId/process", appealHandler.ProcessAppeal)
}
