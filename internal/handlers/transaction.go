package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"paisa/internal/models"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
	"paisa/internal/utils/response"
)

type TransactionHandler struct {
	svc    simulator.Service
	store  *store.Container
	logger *zap.Logger
}

func NewTransactionHandler(svc simulator.Service, st *store.Container, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, store: st, logger: logger}
}

// History fetches the transaction history, optionally narrowed by type,
// status and an RFC 3339 date range.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	filter := &simulator.HistoryFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.ValidationError(c, "from must be an RFC 3339 timestamp")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.ValidationError(c, "to must be an RFC 3339 timestamp")
		}
		filter.To = &to
	}

	transactions, err := h.svc.GetTransactionHistory(c.Context(), filter)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Transaction history fetched", transactions)
}

// Snapshot returns the persisted application state. Pending requests whose
// expiry window has passed are reported with the expired status.
func (h *TransactionHandler) Snapshot(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	now := time.Now()
	for i := range snap.Requests {
		if snap.Requests[i].Expired(now) {
			snap.Requests[i].Status = models.RequestStatusExpired
		}
	}
	return response.Success(c, "Snapshot fetched", snap)
}
