package simulator

import (
	"context"

	"go.uber.org/zap"

	"paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/utils"
)

// ProcessPayment fabricates a completed pay transaction. Amounts above the
// configured ceiling are rejected as insufficient balance, regardless of
// recipient.
func (s *service) ProcessPayment(ctx context.Context, input PaymentInput) (*models.Transaction, error) {
	if err := s.simulate("process_payment", "Payment failed. Please try again."); err != nil {
		return nil, err
	}

	if input.Amount.Sign() <= 0 {
		return nil, errors.ErrInvalidAmount
	}
	if input.Amount.GreaterThan(s.cfg.AmountCeiling) {
		s.logger.Debug("payment over ceiling",
			zap.String("amount", input.Amount.String()),
			zap.String("ceiling", s.cfg.AmountCeiling.String()))
		return nil, errors.ErrInsufficientBalance
	}

	now := s.now()
	tx := &models.Transaction{
		ID:              utils.NewID(utils.PrefixTransaction),
		UserID:          s.profile.UserID,
		Type:            models.TransactionTypePay,
		Status:          models.TransactionStatusSuccess,
		Amount:          input.Amount,
		Currency:        s.cfg.Currency,
		Description:     input.Description,
		ReferenceID:     utils.NewReferenceID(now),
		ProtocolRefID:   utils.NewProtocolRefID(now),
		SenderAddress:   s.profile.Address,
		SenderAccountID: input.SenderAccountID,
		CreatedAt:       now,
		CompletedAt:     &now,
	}
	switch input.Recipient.Type {
	case RecipientTypeAddress:
		tx.ReceiverAddress = input.Recipient.Value
	case RecipientTypePhone:
		tx.ReceiverPhone = input.Recipient.Value
	}
	return tx, nil
}
