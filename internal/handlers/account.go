package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"paisa/internal/models"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
	"paisa/internal/validation"
)

type AccountHandler struct {
	svc    simulator.Service
	store  *store.Container
	logger *zap.Logger
}

func NewAccountHandler(svc simulator.Service, st *store.Container, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, store: st, logger: logger}
}

// LinkAccount links a bank account after validating its details.
func (h *AccountHandler) LinkAccount(c *fiber.Ctx) error {
	var input struct {
		BankName      string `json:"bank_name"`
		AccountNumber string `json:"account_number"`
		RoutingCode   string `json:"routing_code"`
		AccountType   string `json:"account_type"`
		Balance       string `json:"balance"`
		IsDefault     bool   `json:"is_default"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if input.BankName == "" {
		return response.ValidationError(c, "Bank name is required")
	}
	if result := validation.AccountNumber(input.AccountNumber); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validation.RoutingCode(input.RoutingCode); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	switch input.AccountType {
	case "", models.AccountTypeSavings, models.AccountTypeCurrent:
	default:
		return response.ValidationError(c, "Account type must be savings or current")
	}

	balance := decimal.Zero
	if input.Balance != "" {
		parsed, err := decimal.NewFromString(input.Balance)
		if err != nil || parsed.Sign() < 0 {
			return response.ValidationError(c, "Balance must be a non-negative amount")
		}
		balance = parsed
	}

	account, err := h.svc.LinkBankAccount(c.Context(), simulator.LinkAccountInput{
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		RoutingCode:   input.RoutingCode,
		AccountType:   input.AccountType,
		Balance:       balance,
		IsDefault:     input.IsDefault,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddAccount(*account)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Bank account linked", account)
}

// CreateAddress creates a payment address for the demo user.
func (h *AccountHandler) CreateAddress(c *fiber.Ctx) error {
	var input struct {
		Address string `json:"address"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if result := validation.PaymentAddress(input.Address); !result.Valid {
		return response.ValidationError(c, result.Err)
	}

	address, err := h.svc.CreatePaymentAddress(c.Context(), input.Address)
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddAddress(*address)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Payment address created", address)
}

// CheckBalance fetches the (fixed) balance for an account.
func (h *AccountHandler) CheckBalance(c *fiber.Ctx) error {
	accountID := c.Params("id")
	if accountID == "" {
		return response.ValidationError(c, "Account id is required")
	}

	balance, err := h.svc.CheckBalance(c.Context(), accountID)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Balance fetched", balance)
}
