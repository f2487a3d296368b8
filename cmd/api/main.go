package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dishdash/dishdash-api/internal/application/analytics"
	"github.com/dishdash/dishdash-api/internal/application/auth"
	"github.com/dishdash/dishdash-api/internal/application/checkout"
	"github.com/dishdash/dishdash-api/internal/application/usecase"
	"github.com/dishdash/dishdash-api/internal/infrastructure/mail"
	"github.com/dishdash/dishdash-api/internal/infrastructure/postgres"
	infrastripe "github.com/dishdash/dishdash-api/internal/infrastructure/stripe"
	httpRouter "github.com/dishdash/dishdash-api/internal/interfaces/http"
	"github.com/dishdash/dishdash-api/pkg/config"
	"github.com/dishdash/dishdash-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Worker de recibos: los correos de confirmación salen en segundo plano
	// y un fallo de SMTP nunca afecta al pedido.
	receiptSender := mail.NewSMTPReceiptSender(cfg.Mail)
	receiptWorker := checkout.NewReceiptWorker(receiptSender, log)
	receiptWorker.Start()

	stripeClient := infrastripe.New(cfg.Stripe.SecretKey, cfg.Stripe.BaseURL)

	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	cartUC := usecase.NewCartUseCase(cartRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)
	intentUC := checkout.NewPaymentIntentUseCase(stripeClient)
	finalizeUC := checkout.NewFinalizeOrderUseCase(paymentRepo, cartRepo, receiptWorker, log)
	statsUC := analytics.NewStatsUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DishDash API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		MenuUC:     menuUC,
		CartUC:     cartUC,
		PaymentUC:  paymentUC,
		IntentUC:   intentUC,
		FinalizeUC: finalizeUC,
		StatsUC:    statsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Drenar los recibos pendientes antes de salir.
	receiptWorker.Stop()

	log.Info().Msg("aplicación detenida")
}
