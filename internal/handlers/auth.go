package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"paisa/internal/middleware"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
	"paisa/internal/validation"
)

type AuthHandler struct {
	svc      simulator.Service
	store    *store.Container
	secret   string
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAuthHandler(svc simulator.Service, st *store.Container, secret string, tokenTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, store: st, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// SendOTP dispatches the demo OTP to a phone number.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if result := validation.PhoneNumber(input.Phone); !result.Valid {
		return response.ValidationError(c, result.Err)
	}

	ack, err := h.svc.SendOTP(c.Context(), input.Phone)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, ack.Message, ack)
}

// Login verifies the OTP and returns the demo user with a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if result := validation.PhoneNumber(input.Phone); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if input.OTP == "" {
		return response.ValidationError(c, "OTP is required")
	}

	user, err := h.svc.Login(c.Context(), input.Phone, input.OTP)
	if err != nil {
		return response.Domain(c, err)
	}

	token, err := middleware.IssueSessionToken(h.secret, user, h.tokenTTL, time.Now())
	if err != nil {
		h.logger.Error("session token mint failed", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, "Authentication failed")
	}

	h.store.SetUser(*user)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}
