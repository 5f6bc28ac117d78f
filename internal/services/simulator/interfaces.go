package simulator

import (
	"context"
	"time"

	"paisa/internal/models"
)

// Service is the simulated payments backend. Expected failures come back as
// domain error values; only programming errors panic.
type Service interface {
	// Authentication
	SendOTP(ctx context.Context, phone string) (*OTPAck, error)
	Login(ctx context.Context, phone, otp string) (*models.User, error)

	// Account and address management
	LinkBankAccount(ctx context.Context, input LinkAccountInput) (*models.BankAccount, error)
	CreatePaymentAddress(ctx context.Context, address string) (*models.PaymentAddress, error)
	CheckBalance(ctx context.Context, accountID string) (*Balance, error)

	// Payments
	ProcessPayment(ctx context.Context, input PaymentInput) (*models.Transaction, error)
	RequestMoney(ctx context.Context, input RequestMoneyInput) (*models.PaymentRequest, error)
	RespondToPaymentRequest(ctx context.Context, requestID, action string) (*models.PaymentRequest, error)
	GetTransactionHistory(ctx context.Context, filter *HistoryFilter) ([]models.Transaction, error)

	// Scanned payment codes
	GenerateQRCode(ctx context.Context, input QRInput) (*models.QRCode, error)
	ParseQRCode(ctx context.Context, payload string) (*ParsedQR, error)

	// Payees
	AddContact(ctx context.Context, input ContactInput) (*models.Contact, error)
	AddBeneficiary(ctx context.Context, input BeneficiaryInput) (*models.Beneficiary, error)
}

// RandomSource drives both the delay spread and the failure roll.
type RandomSource interface {
	Float64() float64
}

// SleepFunc suspends the calling operation. The delay is deliberately not
// cancelable: once an operation starts there is no way to abort it before
// its delay elapses.
type SleepFunc func(time.Duration)

// Clock returns the current time.
type Clock func() time.Time
