package simulator

import (
	"context"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/utils"
)

func (s *service) LinkBankAccount(ctx context.Context, input LinkAccountInput) (*models.BankAccount, error) {
	if err := s.simulate("link_bank_account", "Failed to link bank account. Please try again."); err != nil {
		return nil, err
	}

	accountType := input.AccountType
	if accountType == "" {
		accountType = models.AccountTypeSavings
	}

	return &models.BankAccount{
		ID:            utils.NewID(utils.PrefixAccount),
		UserID:        s.profile.UserID,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		RoutingCode:   input.RoutingCode,
		AccountType:   accountType,
		Balance:       input.Balance,
		IsDefault:     input.IsDefault,
		IsActive:      true,
		CreatedAt:     s.now(),
	}, nil
}

func (s *service) CreatePaymentAddress(ctx context.Context, address string) (*models.PaymentAddress, error) {
	if err := s.simulate("create_payment_address", "Failed to create payment address. Please try again."); err != nil {
		return nil, err
	}

	return &models.PaymentAddress{
		ID:        utils.NewID(utils.PrefixAddress),
		UserID:    s.profile.UserID,
		Address:   address,
		IsDefault: false,
		IsActive:  true,
		CreatedAt: s.now(),
	}, nil
}

// demoBalance is the fixed figure CheckBalance always reports.
var demoBalance = decimal.RequireFromString("125000.50")

func (s *service) CheckBalance(ctx context.Context, accountID string) (*Balance, error) {
	if err := s.simulate("check_balance", "Failed to fetch balance. Please try again."); err != nil {
		return nil, err
	}

	return &Balance{AccountID: accountID, Balance: demoBalance}, nil
}
