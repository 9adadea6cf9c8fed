// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"wallzy/internal/config"
	"wallzy/internal/handlers"
	"wallzy/internal/middleware"
	"wallzy/internal/models"
	"wallzy/internal/repositories"
	"wallzy/internal/services/auth"
	"wallzy/internal/services/mailer"
	"wallzy/internal/services/portfolio"
	"wallzy/internal/services/waitlist"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App) {
	// Initialize repositories
	catalogRepo := repositories.NewCatalogRepository(repositories.DB, repositories.CacheService)
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	waitlistRepo := repositories.NewWaitlistRepository(repositories.DB)

	// Initialize services
	authService := auth.NewService(userRepo)
	portfolioService := portfolio.NewService(catalogRepo)
	waitlistService := waitlist.NewService(waitlistRepo)
	mailerService := mailer.NewService(
		config.GetEnv("RESEND_API_KEY", "re_dev_placeholder"),
		config.GetEnv("MAIL_FROM", ""),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistService)
	resultsHandler := handlers.NewResultsHandler(mailerService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Wallzy API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/cards", catalogHandler.GetCards)
	api.Post("/waitlist", waitlistHandler.Join)
	api.Post("/results/send", resultsHandler.SendResults)

	// Portfolio endpoints are public: the wizard runs without an account.
	portfolioGroup := api.Group("/portfolio")
	portfolioGroup.Post("/strategy", portfolioHandler.BuildStrategy)
	portfolioGroup.Post("/followups", portfolioHandler.ListFollowUps)

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Post("/logout", authHandler.LogoutUser)

	setupAdminRoutes(app, authMiddleware, catalogHandler, waitlistHandler)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, catalogHandler *handlers.CatalogHandler, waitlistHandler *handlers.WaitlistHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	admin.Get("/cards", middleware.HasPermission(models.PermissionCatalogRead), catalogHandler.ListCards)
	admin.Post("/cards", middleware.HasPermission(models.PermissionCatalogWrite), catalogHandler.CreateCard)
	admin.Put("/cards/:cardId", middleware.HasPermission(models.PermissionCatalogWrite), catalogHandler.UpdateCard)
	admin.Delete("/cards/:cardId", middleware.HasPermission(models.PermissionCatalogWrite), catalogHandler.DeleteCard)

	admin.Get("/waitlist", middleware.HasPermission(models.PermissionWaitlistRead), waitlistHandler.List)
	admin.Get("/waitlist/export", middleware.HasPermission(models.PermissionWaitlistRead), waitlistHandler.ExportCSV)

	admin.Get("/cache-stats", handlers.CacheStats)
}
