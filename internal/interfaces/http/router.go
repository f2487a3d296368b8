package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dishdash/dishdash-api/internal/application/analytics"
	"github.com/dishdash/dishdash-api/internal/application/auth"
	"github.com/dishdash/dishdash-api/internal/application/checkout"
	"github.com/dishdash/dishdash-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	MenuUC     *usecase.MenuUseCase
	CartUC     *usecase.CartUseCase
	PaymentUC  *usecase.PaymentUseCase
	IntentUC   *checkout.PaymentIntentUseCase
	FinalizeUC *checkout.FinalizeOrderUseCase
	StatsUC    *analytics.StatsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Cada ruta protegida declara sus
// requisitos (Authenticated, AdminOnly, Self*) y el Gate los evalúa en orden.
func Router(app *fiber.App, deps RouterDeps) {
	gate := NewGate(deps.JWTSecret, deps.UserUC)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/jwt", authHandler.IssueToken)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", gate.Protect(Authenticated, AdminOnly), userHandler.List)
	app.Get("/users/admin/:email", gate.Protect(Authenticated, SelfParam("email")), userHandler.AdminStatus)
	app.Post("/users", userHandler.Create)
	app.Patch("/users/admin/:id", gate.Protect(Authenticated, AdminOnly), userHandler.Promote)
	app.Delete("/users/:id", gate.Protect(Authenticated, AdminOnly), userHandler.Delete)

	// Menu (lectura pública, escritura admin)
	menuHandler := NewMenuHandler(deps.MenuUC)
	app.Get("/menu", menuHandler.List)
	app.Get("/menu/:id", menuHandler.GetByID)
	app.Post("/menu", gate.Protect(Authenticated, AdminOnly), menuHandler.Create)
	app.Patch("/menu/:id", gate.Protect(Authenticated, AdminOnly), menuHandler.Update)
	app.Delete("/menu/:id", gate.Protect(Authenticated, AdminOnly), menuHandler.Delete)

	// Carts (público: el frontend maneja el email del dueño)
	cartHandler := NewCartHandler(deps.CartUC)
	app.Get("/carts", cartHandler.List)
	app.Post("/carts", cartHandler.Create)
	app.Delete("/carts/:id", cartHandler.Delete)

	// Payments
	paymentHandler := NewPaymentHandler(deps.IntentUC, deps.FinalizeUC, deps.PaymentUC)
	app.Post("/create-payment-intent", paymentHandler.CreateIntent)
	app.Post("/payments", paymentHandler.Create)
	app.Get("/payments/:email", gate.Protect(Authenticated, SelfParam("email")), paymentHandler.History)
	app.Get("/allPayments", gate.Protect(Authenticated, AdminOnly), paymentHandler.ListAll)
	app.Patch("/allPayments/:id", gate.Protect(Authenticated, AdminOnly), paymentHandler.UpdateStatus)

	// Stats
	statsHandler := NewStatsHandler(deps.StatsUC)
	app.Get("/admin-stats", gate.Protect(Authenticated, AdminOnly), statsHandler.AdminStats)
	app.Get("/order-stats", gate.Protect(Authenticated, AdminOnly), statsHandler.OrderStats)
	app.Get("/user-stats/:email", gate.Protect(Authenticated, SelfParam("email")), statsHandler.UserStats)
}
