package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QR code kinds. Personal codes carry only an address; payment codes carry
// an amount and description and expire after 24 hours.
const (
	QRTypePersonal = "personal"
	QRTypePayment  = "payment"
)

// PaymentQRExpiry is the lifetime of a payment-kind code.
const PaymentQRExpiry = 24 * time.Hour

// QRScheme is the payload URI scheme. Payloads not starting with it are
// rejected by the parser.
const QRScheme = "upi://"

type QRCode struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Type        string           `json:"type"`
	Payload     string           `json:"data"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
}

// Expired reports whether the code's expiry has passed at now. Codes with no
// expiry never expire.
func (q QRCode) Expired(now time.Time) bool {
	return q.ExpiresAt != nil && now.After(*q.ExpiresAt)
}
