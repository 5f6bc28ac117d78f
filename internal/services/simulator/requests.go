package simulator

import (
	"context"

	"github.com/shopspring/decimal"

	"paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/utils"
)

func (s *service) RequestMoney(ctx context.Context, input RequestMoneyInput) (*models.PaymentRequest, error) {
	if err := s.simulate("request_money", "Failed to send money request. Please try again."); err != nil {
		return nil, err
	}

	if input.Amount.Sign() <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	now := s.now()
	return &models.PaymentRequest{
		ID:               utils.NewID(utils.PrefixRequest),
		UserID:           s.profile.UserID,
		RequesterID:      s.profile.UserID,
		RequesterName:    s.profile.Name,
		RequesterAddress: s.profile.Address,
		Amount:           input.Amount,
		Currency:         s.cfg.Currency,
		Description:      input.Description,
		Status:           models.RequestStatusPending,
		ExpiresAt:        now.Add(models.RequestExpiry),
		CreatedAt:        now,
	}, nil
}

// Fabricated counterparty for RespondToPaymentRequest. The simulator owns no
// state, so the request is not looked up; the id, action and response time
// from the caller are honored.
var demoCounterpartyAmount = decimal.NewFromInt(2000)

func (s *service) RespondToPaymentRequest(ctx context.Context, requestID, action string) (*models.PaymentRequest, error) {
	if err := s.simulate("respond_to_request", "Failed to process request. Please try again."); err != nil {
		return nil, err
	}

	var status string
	switch action {
	case models.RequestActionAccept:
		status = models.RequestStatusAccepted
	case models.RequestActionDecline:
		status = models.RequestStatusDeclined
	default:
		return nil, errors.ErrInvalidRequestAction
	}

	now := s.now()
	return &models.PaymentRequest{
		ID:               requestID,
		UserID:           s.profile.UserID,
		RequesterID:      "user-2",
		RequesterName:    "Priya Patel",
		RequesterAddress: "priya.patel@paytm",
		Amount:           demoCounterpartyAmount,
		Currency:         s.cfg.Currency,
		Description:      "Weekend trip expenses",
		Status:           status,
		ExpiresAt:        now.Add(models.RequestExpiry),
		CreatedAt:        now,
		RespondedAt:      &now,
	}, nil
}
