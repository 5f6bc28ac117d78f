package simulator

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/utils"
)

// Payload query parameter names, fixed by the wire format:
// upi://<address>?am=<decimal>&tn=<url-encoded text>.
const (
	paramAmount = "am"
	paramNote   = "tn"
)

func (s *service) GenerateQRCode(ctx context.Context, input QRInput) (*models.QRCode, error) {
	if err := s.simulate("generate_qr", "Failed to generate QR code. Please try again."); err != nil {
		return nil, err
	}

	switch input.Type {
	case models.QRTypePersonal, models.QRTypePayment:
	default:
		return nil, errors.ErrInvalidQRType
	}
	if input.Type == models.QRTypePayment && input.Amount == nil {
		return nil, errors.ErrQRAmountRequired
	}

	now := s.now()
	code := &models.QRCode{
		ID:          utils.NewID(utils.PrefixQR),
		UserID:      s.profile.UserID,
		Type:        input.Type,
		Payload:     buildPayload(s.profile.Address, input),
		Amount:      input.Amount,
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   now,
	}
	if input.Type == models.QRTypePayment {
		expires := now.Add(models.PaymentQRExpiry)
		code.ExpiresAt = &expires
	}
	return code, nil
}

// ParseQRCode decodes a scanned payload. The kind is payment exactly when an
// amount parameter is present.
func (s *service) ParseQRCode(ctx context.Context, payload string) (*ParsedQR, error) {
	if err := s.simulate("parse_qr", "Failed to parse QR code. Please try again."); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(payload, models.QRScheme) {
		return nil, errors.ErrInvalidQRFormat
	}

	rest := strings.TrimPrefix(payload, models.QRScheme)
	address, query, _ := strings.Cut(rest, "?")

	params, err := url.ParseQuery(query)
	if err != nil {
		return nil, errors.ErrInvalidQRFormat
	}

	parsed := &ParsedQR{
		Type:        models.QRTypePersonal,
		Description: params.Get(paramNote),
		Recipient:   address,
	}
	if params.Has(paramAmount) {
		amount, err := decimal.NewFromString(params.Get(paramAmount))
		if err != nil {
			return nil, errors.ErrInvalidQRFormat
		}
		parsed.Type = models.QRTypePayment
		parsed.Amount = &amount
	}
	return parsed, nil
}

func buildPayload(address string, input QRInput) string {
	if input.Type == models.QRTypePersonal {
		return models.QRScheme + address
	}
	params := url.Values{}
	if input.Amount != nil {
		params.Set(paramAmount, input.Amount.String())
	}
	if input.Description != "" {
		params.Set(paramNote, input.Description)
	}
	return models.QRScheme + address + "?" + params.Encode()
}
