package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
	"paisa/internal/validation"
)

type ContactHandler struct {
	svc    simulator.Service
	store  *store.Container
	logger *zap.Logger
}

func NewContactHandler(svc simulator.Service, st *store.Container, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, store: st, logger: logger}
}

// AddContact saves a contact after validating its fields.
func (h *ContactHandler) AddContact(c *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Avatar     string `json:"avatar"`
		IsFavorite bool   `json:"is_favorite"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if result := validation.DisplayName(input.Name); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if result := validation.PhoneNumber(input.Phone); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if input.Email != "" {
		if result := validation.Email(input.Email); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
	}

	contact, err := h.svc.AddContact(c.Context(), simulator.ContactInput{
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Avatar:     input.Avatar,
		IsFavorite: input.IsFavorite,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddContact(*contact)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Contact added", contact)
}

// AddBeneficiary saves a beneficiary. Contact methods are all optional and
// only validated when present; a record with none is accepted as a draft.
func (h *ContactHandler) AddBeneficiary(c *fiber.Ctx) error {
	var input struct {
		Name          string `json:"name"`
		Address       string `json:"address"`
		Phone         string `json:"phone"`
		AccountNumber string `json:"account_number"`
		RoutingCode   string `json:"routing_code"`
		BankName      string `json:"bank_name"`
		IsFavorite    bool   `json:"is_favorite"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if result := validation.DisplayName(input.Name); !result.Valid {
		return response.ValidationError(c, result.Err)
	}
	if input.Address != "" {
		if result := validation.PaymentAddress(input.Address); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
	}
	if input.Phone != "" {
		if result := validation.PhoneNumber(input.Phone); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
	}
	if input.AccountNumber != "" {
		if result := validation.AccountNumber(input.AccountNumber); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
		if result := validation.RoutingCode(input.RoutingCode); !result.Valid {
			return response.ValidationError(c, result.Err)
		}
	}

	beneficiary, err := h.svc.AddBeneficiary(c.Context(), simulator.BeneficiaryInput{
		Name:          input.Name,
		Address:       input.Address,
		Phone:         input.Phone,
		AccountNumber: input.AccountNumber,
		RoutingCode:   input.RoutingCode,
		BankName:      input.BankName,
		IsFavorite:    input.IsFavorite,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	h.store.AddBeneficiary(*beneficiary)
	persist(c.Context(), h.store, h.logger)

	return response.Success(c, "Beneficiary added", beneficiary)
}
