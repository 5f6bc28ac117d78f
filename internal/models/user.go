// Package models defines the value records exchanged between callers and the
// simulated backend. Records are never mutated in place; updates produce new
// values.
package models

import "time"

// Theme preference values.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Avatar           string `json:"avatar,omitempty"`
	SetupComplete    bool   `json:"is_setup_complete"`
	DefaultAccountID string `json:"default_account_id,omitempty"`
	Theme            string `json:"theme"`
	Notifications    bool   `json:"notifications"`
}

type Contact struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

// Beneficiary is a saved payee. Any of address, phone or account details may
// be absent; a record with none of them is accepted as a bare draft.
type Beneficiary struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	RoutingCode   string    `json:"routing_code,omitempty"`
	BankName      string    `json:"bank_name,omitempty"`
	IsFavorite    bool      `json:"is_favorite"`
	LastUsed      time.Time `json:"last_used"`
	CreatedAt     time.Time `json:"created_at"`
}
