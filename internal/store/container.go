package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paisa/internal/models"
)

// ErrNoSnapshot is returned by a Port when no snapshot has been persisted.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Container guards the in-memory snapshot and pushes it through the port.
// All mutators copy-on-write into the guarded state; readers get copies.
type Container struct {
	mu     sync.RWMutex
	snap   Snapshot
	port   Port
	logger *zap.Logger
}

func NewContainer(port Port, logger *zap.Logger) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Container{port: port, logger: logger}
}

// Hydrate loads the persisted snapshot, if any, into the container.
func (c *Container) Hydrate(ctx context.Context) error {
	snap, err := c.port.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			c.logger.Info("no persisted snapshot, starting fresh")
			return nil
		}
		return err
	}
	c.mu.Lock()
	c.snap = *snap
	c.mu.Unlock()
	c.logger.Info("snapshot hydrated", zap.String("revision", snap.Revision))
	return nil
}

// Flush persists the current snapshot under a fresh revision tag.
func (c *Container) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.snap.Revision = uuid.NewString()
	c.snap.SavedAt = time.Now()
	snap := c.copyLocked()
	c.mu.Unlock()
	return c.port.Save(ctx, &snap)
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked()
}

func (c *Container) SetUser(user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.User = &user
}

func (c *Container) AddAccount(account models.BankAccount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if account.IsDefault {
		for i := range c.snap.Accounts {
			c.snap.Accounts[i].IsDefault = false
		}
	}
	c.snap.Accounts = append(c.snap.Accounts, account)
}

func (c *Container) AddAddress(address models.PaymentAddress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Addresses = append(c.snap.Addresses, address)
}

func (c *Container) AddContact(contact models.Contact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Contacts = append(c.snap.Contacts, contact)
}

func (c *Container) AddBeneficiary(b models.Beneficiary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Beneficiaries = append(c.snap.Beneficiaries, b)
}

func (c *Container) AddTransaction(tx models.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Transactions = append(c.snap.Transactions, tx)
}

func (c *Container) AddQRCode(code models.QRCode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.QRCodes = append(c.snap.QRCodes, code)
}

// FindQRCode returns the stored code with the given payload, if any.
func (c *Container) FindQRCode(payload string) (models.QRCode, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, code := range c.snap.QRCodes {
		if code.Payload == payload {
			return code, true
		}
	}
	return models.QRCode{}, false
}

// UpsertRequest replaces the request with the same ID or appends it.
func (c *Container) UpsertRequest(req models.PaymentRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.snap.Requests {
		if c.snap.Requests[i].ID == req.ID {
			c.snap.Requests[i] = req
			return
		}
	}
	c.snap.Requests = append(c.snap.Requests, req)
}

func (c *Container) copyLocked() Snapshot {
	snap := c.snap
	if c.snap.User != nil {
		user := *c.snap.User
		snap.User = &user
	}
	snap.Accounts = append([]models.BankAccount(nil), c.snap.Accounts...)
	snap.Addresses = append([]models.PaymentAddress(nil), c.snap.Addresses...)
	snap.Contacts = append([]models.Contact(nil), c.snap.Contacts...)
	snap.Beneficiaries = append([]models.Beneficiary(nil), c.snap.Beneficiaries...)
	snap.Transactions = append([]models.Transaction(nil), c.snap.Transactions...)
	snap.Requests = append([]models.PaymentRequest(nil), c.snap.Requests...)
	snap.QRCodes = append([]models.QRCode(nil), c.snap.QRCodes...)
	return snap
}
