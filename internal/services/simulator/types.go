package simulator

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config tunes the simulated backend's behavior.
type Config struct {
	// FailureRate is the probability, rolled independently per operation,
	// of returning a generic network failure before business logic runs.
	FailureRate float64

	// Delay bounds for the artificial latency of every operation.
	MinDelay time.Duration
	MaxDelay time.Duration

	// DemoOTP is the only code Login accepts.
	DemoOTP string

	// AmountCeiling is the per-payment cap; amounts above it are rejected
	// as insufficient balance.
	AmountCeiling decimal.Decimal

	// Currency stamped on every fabricated record.
	Currency string
}

// DefaultConfig returns the documented simulator behavior: 300-1200 ms
// latency, 5% failure rate, demo OTP 123456, 100000 ceiling.
func DefaultConfig() Config {
	return Config{
		FailureRate:   0.05,
		MinDelay:      300 * time.Millisecond,
		MaxDelay:      1200 * time.Millisecond,
		DemoOTP:       "123456",
		AmountCeiling: decimal.NewFromInt(100000),
		Currency:      "INR",
	}
}

// Profile is the demo identity the simulator fabricates responses around.
type Profile struct {
	UserID  string
	Name    string
	Email   string
	Avatar  string
	Address string
}

// DefaultProfile returns the stock demo identity.
func DefaultProfile() Profile {
	return Profile{
		UserID:  "user-1",
		Name:    "Rahul Sharma",
		Email:   "rahul.sharma@example.com",
		Address: "rahul.sharma@hdfc",
	}
}

// Recipient kinds.
const (
	RecipientTypeAddress = "vpa"
	RecipientTypePhone   = "phone"
	RecipientTypeQR      = "qr"
)

// Recipient identifies who a payment or request is directed at.
type Recipient struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

// LinkAccountInput carries the fields needed to link a bank account.
type LinkAccountInput struct {
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	RoutingCode   string          `json:"routing_code"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	IsDefault     bool            `json:"is_default"`
}

// PaymentInput carries a payment instruction.
type PaymentInput struct {
	Amount          decimal.Decimal `json:"amount"`
	Recipient       Recipient       `json:"recipient"`
	Description     string          `json:"description,omitempty"`
	SenderAccountID string          `json:"sender_account_id"`
}

// RequestMoneyInput carries an ask for money.
type RequestMoneyInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Recipient   Recipient       `json:"recipient"`
	Description string          `json:"description,omitempty"`
}

// QRInput describes the scanned payment code to generate.
type QRInput struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description,omitempty"`
}

// ParsedQR is the structured content decoded from a scanned payload.
type ParsedQR struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description,omitempty"`
	Recipient   string           `json:"recipient,omitempty"`
}

// ContactInput carries a new contact's fields.
type ContactInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	IsFavorite bool   `json:"is_favorite"`
}

// BeneficiaryInput carries a new beneficiary's fields. All contact methods
// are optional; a record with none is accepted as a bare draft.
type BeneficiaryInput struct {
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingCode   string `json:"routing_code,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	IsFavorite    bool   `json:"is_favorite"`
}

// HistoryFilter narrows a transaction history fetch. Zero values match
// everything; the date range is inclusive.
type HistoryFilter struct {
	Type   string     `json:"type,omitempty"`
	Status string     `json:"status,omitempty"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

// OTPAck acknowledges an OTP dispatch.
type OTPAck struct {
	Message string `json:"message"`
}

// Balance is a point-in-time account balance figure.
type Balance struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}
