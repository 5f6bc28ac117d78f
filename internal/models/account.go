package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account kinds.
const (
	AccountTypeSavings = "savings"
	AccountTypeCurrent = "current"
)

type BankAccount struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	RoutingCode   string          `json:"routing_code"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	IsDefault     bool            `json:"is_default"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentAddress is a virtual payment address (VPA) of form user@provider
// standing in for a bank account.
type PaymentAddress struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Address   string    `json:"address"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
