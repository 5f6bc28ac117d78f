package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"paisa/internal/errors"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
	"paisa/internal/validation"
)

type QRHandler struct {
	svc    simulator.Service
	store  *store.Container
	logger *zap.Logger
}

func NewQRHandler(svc simulator.Service, st *store.Container, logger *zap.Logger) *QRHandler {
	return &QRHandler{svc: svc, store: st, logger: logger}
}

// Generate creates a personal or payment scanned code.
func (h *QRHandler) Generate(c *fiber.Ctx) error {
	var input struct {
		Type        string `json:"type"`
		Amount      string `json:"amount"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	var amount *decimal.Decimal
	if input.Amount != "" {
		if result := validation.Amount(input.Amount); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
		parsed, _ := decimal.NewFromString(input.Amount)
		amount = &parsed
	}
	if result := validation.Description(input.Description); !result.Valid {
		return response.ValidationError(c, result.Err)
	}

	code, err := h.svc.GenerateQRCode(c.Context(), simulator.QRInput{
		Type:        input.Type,
		Amount:      amount,
		Description: input.Description,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddQRCode(*code)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "QR code generated", code)
}

// Parse decodes a scanned payload into its payment intent.
func (h *QRHandler) Parse(c *fiber.Ctx) error {
	var input struct {
		Data string `json:"data"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if result := validation.ScannedPayload(input.Data); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	// Codes this app generated are checked against their stored expiry.
	if code, ok := h.store.FindQRCode(input.Data); ok && code.Expired(time.Now()) {
		return response.Domain(c, errors.ErrQRExpired)
	}

	parsed, err := h.svc.ParseQRCode(c.Context(), input.Data)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "QR code parsed", parsed)
}
