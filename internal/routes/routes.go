// Package routes wires repositories, services and handlers onto the
// fiber app.
package routes

import (
	"vimo/internal/handlers"
	"vimo/internal/middleware"
	"vimo/internal/repositories"
	"vimo/internal/services/auth"
	"vimo/internal/services/category"
	"vimo/internal/services/dashboard"
	"vimo/internal/services/ledger"
	"vimo/internal/services/report"
	"vimo/internal/services/user"
	"vimo/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	cacheSvc := repositories.CacheService

	// Services
	authService := auth.NewService(userRepo)
	walletService := wallet.NewService(walletRepo, cacheSvc)
	// A nil *CacheService must stay a nil interface, or the service's
	// nil guard never fires.
	var invalidator ledger.CacheInvalidator
	if cacheSvc != nil {
		invalidator = cacheSvc
	}
	ledgerService := ledger.NewService(ledgerRepo, categoryRepo, invalidator)
	categoryService := category.NewService(categoryRepo)
	reportService := report.NewService(ledgerRepo, nil)
	dashboardService := dashboard.NewService(walletRepo, ledgerRepo, cacheSvc)
	userService := user.NewService(userRepo, ledgerRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	transferHandler := handlers.NewTransferHandler(ledgerService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	accountHandler := handlers.NewAccountHandler(userService)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid token
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Get("/account", accountHandler.Get)

	protected.Get("/wallets", walletHandler.List)
	protected.Post("/wallets", walletHandler.Create)
	protected.Delete("/wallets/:id", walletHandler.Deactivate)
	protected.Get("/wallet-types", walletHandler.ListTypes)

	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Create)
	protected.Put("/categories/:id", categoryHandler.Update)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Get("/transactions", transactionHandler.List)
	protected.Post("/transactions", transactionHandler.Create)
	protected.Post("/transfer", transferHandler.Create)

	protected.Get("/reports", reportHandler.Get)
	protected.Get("/dashboard", dashboardHandler.Get)
}
