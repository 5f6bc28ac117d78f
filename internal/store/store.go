// Package store holds the caller-side application state: a snapshot of every
// record the simulated backend has handed out, guarded by a container and
// persisted through a pluggable port. The validators and the simulator never
// depend on this package; only the HTTP layer does.
package store

import (
	"context"
	"time"

	"paisa/internal/models"
)

// Snapshot is the full persisted state. Plain data, no schema versioning
// beyond the revision tag.
type Snapshot struct {
	User          *models.User            `json:"user,omitempty"`
	Accounts      []models.BankAccount    `json:"accounts"`
	Addresses     []models.PaymentAddress `json:"addresses"`
	Contacts      []models.Contact        `json:"contacts"`
	Beneficiaries []models.Beneficiary    `json:"beneficiaries"`
	Transactions  []models.Transaction    `json:"transactions"`
	Requests      []models.PaymentRequest `json:"requests"`
	QRCodes       []models.QRCode         `json:"qr_codes"`
	Revision      string                  `json:"revision,omitempty"`
	SavedAt       time.Time               `json:"saved_at"`
}

// Port reads and writes the persisted snapshot. ErrNoSnapshot is returned by
// Load when nothing has been saved yet.
type Port interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
