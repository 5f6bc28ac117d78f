package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
	"paisa/internal/validation"
)

type PaymentHandler struct {
	svc    simulator.Service
	store  *store.Container
	logger *zap.Logger
}

func NewPaymentHandler(svc simulator.Service, st *store.Container, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, store: st, logger: logger}
}

type recipientInput struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Name  string `json:"name"`
}

// validateRecipient gates the recipient the same way the UI does before
// submitting: address-kind values must be a valid VPA, phone-kind a valid
// mobile number. Scanned-code values were already validated by the parser.
func validateRecipient(r recipientInput) validation.Result {
	switch r.Type {
	case simulator.RecipientTypeAddress:
		return validation.PaymentAddress(r.Value)
	case simulator.RecipientTypePhone:
		return validation.PhoneNumber(r.Value)
	case simulator.RecipientTypeQR:
		if r.Value == "" {
			return validation.Result{Valid: false, Err: "Recipient is required"}
		}
		return validation.Result{Valid: true}
	default:
		return validation.Result{Valid: false, Err: "Recipient type must be vpa, phone, or qr"}
	}
}

// ProcessPayment validates and submits a payment.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var input struct {
		Amount          string         `json:"amount"`
		Recipient       recipientInput `json:"recipient"`
		Description     string         `json:"description"`
		SenderAccountID string         `json:"sender_account_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if result := validation.Amount(input.Amount); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validateRecipient(input.Recipient); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validation.Description(input.Description); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if input.SenderAccountID == "" {
		return response.ValidationError(c, "Sender account is required")
	}

	amount, _ := decimal.NewFromString(input.Amount)
	tx, err := h.svc.ProcessPayment(c.Context(), simulator.PaymentInput{
		Amount: amount,
		Recipient: simulator.Recipient{
			Type:  input.Recipient.Type,
			Value: input.Recipient.Value,
			Name:  input.Recipient.Name,
		},
		Description:     input.Description,
		SenderAccountID: input.SenderAccountID,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddTransaction(*tx)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Payment successful", tx)
}

// RequestMoney validates and submits an ask for money.
func (h *PaymentHandler) RequestMoney(c *fiber.Ctx) error {
	var input struct {
		Amount      string         `json:"amount"`
		Recipient   recipientInput `json:"recipient"`
		Description string         `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if result := validation.Amount(input.Amount); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validateRecipient(input.Recipient); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validation.Description(input.Description); !result.Valid {
		return response.ValidationError(c, result.Err)
	}

	amount, _ := decimal.NewFromString(input.Amount)
	req, err := h.svc.RequestMoney(c.Context(), simulator.RequestMoneyInput{
		Amount: amount,
		Recipient: simulator.Recipient{
			Type:  input.Recipient.Type,
			Value: input.Recipient.Value,
			Name:  input.Recipient.Name,
		},
		Description: input.Description,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.UpsertRequest(*req)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Money request sent", req)
}

// RespondToRequest accepts or declines a pending payment request.
func (h *PaymentHandler) RespondToRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")
	var input struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	req, err := h.svc.RespondToPaymentRequest(c.Context(), requestID, input.Action)
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.UpsertRequest(*req)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Request "+req.Status, req)
}
