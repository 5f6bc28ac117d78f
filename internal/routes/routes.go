// Package routes wires the HTTP surface: it constructs the simulator and the
// state container, groups routes, and applies middleware.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"paisa/internal/config"
	"paisa/internal/handlers"
	"paisa/internal/middleware"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg config.Config, st *store.Container, logger *zap.Logger) {
	svc := simulator.NewService(simulator.Config{
		FailureRate:   cfg.Simulator.FailureRate,
		MinDelay:      cfg.Simulator.MinDelay,
		MaxDelay:      cfg.Simulator.MaxDelay,
		DemoOTP:       cfg.Simulator.DemoOTP,
		AmountCeiling: cfg.Simulator.AmountCeiling,
		Currency:      cfg.Simulator.Currency,
	}, simulator.DefaultProfile(), logger.Named("simulator"))

	authHandler := handlers.NewAuthHandler(svc, st, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger.Named("auth"))
	accountHandler := handlers.NewAccountHandler(svc, st, logger.Named("account"))
	paymentHandler := handlers.NewPaymentHandler(svc, st, logger.Named("payment"))
	qrHandler := handlers.NewQRHandler(svc, st, logger.Named("qr"))
	contactHandler := handlers.NewContactHandler(svc, st, logger.Named("contact"))
	transactionHandler := handlers.NewTransactionHandler(svc, st, logger.Named("transaction"))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Paisa API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints, rate-limited per IP
	otpLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
	api.Post("/otp", otpLimiter, authHandler.SendOTP)
	api.Post("/login", otpLimiter, authHandler.Login)

	// Authenticated endpoints
	auth := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, logger.Named("middleware"))
	protected := api.Group("", auth.Handler)

	protected.Post("/accounts", accountHandler.LinkAccount)
	protected.Get("/accounts/:id/balance", accountHandler.CheckBalance)
	protected.Post("/addresses", accountHandler.CreateAddress)

	protected.Post("/payments", paymentHandler.ProcessPayment)
	protected.Post("/requests", paymentHandler.RequestMoney)
	protected.Post("/requests/:id/respond", paymentHandler.RespondToRequest)

	protected.Post("/qr", qrHandler.Generate)
	protected.Post("/qr/parse", qrHandler.Parse)

	protected.Post("/contacts", contactHandler.AddContact)
	protected.Post("/beneficiaries", contactHandler.AddBeneficiary)

	protected.Get("/transactions", transactionHandler.History)
	protected.Get("/snapshot", transactionHandler.Snapshot)
}
