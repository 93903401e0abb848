package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/custodia-pro/internal/application/admin"
	"github.com/tu-usuario/custodia-pro/internal/application/auth"
	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TrackingUC *tracking.TrackingUseCase
	AdminUC    *admin.AdminUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token). La autorización por rol la
	// decide el core en cada operación contra el registro de roles.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: comandos y consultas del ciclo de vida
	products := protected.Group("/products")
	trackingHandler := NewTrackingHandler(deps.TrackingUC)
	products.Post("/", trackingHandler.Register)
	products.Get("/:id", trackingHandler.GetByID)
	products.Get("/:id/history", trackingHandler.GetHistory)
	products.Patch("/:id/location", trackingHandler.UpdateLocation)
	products.Post("/:id/transfer", trackingHandler.Transfer)

	// Admin: guard operacional y roles
	adminGroup := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Post("/pause", adminHandler.Pause)
	adminGroup.Post("/unpause", adminHandler.Unpause)
	adminGroup.Post("/roles/grant", adminHandler.GrantRole)
	adminGroup.Post("/roles/revoke", adminHandler.RevokeRole)
}
