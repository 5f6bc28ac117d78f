package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds.
const (
	TransactionTypePay     = "pay"
	TransactionTypeRequest = "request"
	TransactionTypeCollect = "collect"
)

// Transaction statuses. Success and failed are terminal.
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

type Transaction struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Type              string          `json:"type"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Description       string          `json:"description,omitempty"`
	ReferenceID       string          `json:"reference_id"`
	ProtocolRefID     string          `json:"protocol_ref_id"`
	SenderAddress     string          `json:"sender_address,omitempty"`
	ReceiverAddress   string          `json:"receiver_address,omitempty"`
	SenderPhone       string          `json:"sender_phone,omitempty"`
	ReceiverPhone     string          `json:"receiver_phone,omitempty"`
	SenderAccountID   string          `json:"sender_account_id,omitempty"`
	ReceiverAccountID string          `json:"receiver_account_id,omitempty"`
	Fee               decimal.Decimal `json:"fee"`
	CreatedAt         time.Time       `json:"created_at"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	FailureReason     string          `json:"failure_reason,omitempty"`
}
