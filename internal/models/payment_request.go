package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment request statuses. Pending moves to exactly one of the others;
// expired is time-triggered.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
	RequestStatusExpired  = "expired"
)

// Request responder actions.
const (
	RequestActionAccept  = "accept"
	RequestActionDecline = "decline"
)

// RequestExpiry is how long a payment request stays open.
const RequestExpiry = 7 * 24 * time.Hour

type PaymentRequest struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	RequesterID      string          `json:"requester_id"`
	RequesterName    string          `json:"requester_name"`
	RequesterAddress string          `json:"requester_address"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Description      string          `json:"description,omitempty"`
	Status           string          `json:"status"`
	ExpiresAt        time.Time       `json:"expires_at"`
	CreatedAt        time.Time       `json:"created_at"`
	RespondedAt      *time.Time      `json:"responded_at,omitempty"`
}

// Expired reports whether the request's expiry window has passed at now.
func (r PaymentRequest) Expired(now time.Time) bool {
	return r.Status == RequestStatusPending && now.After(r.ExpiresAt)
}
