package simulator

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
)

// GetTransactionHistory returns the canned demo ledger narrowed by the
// filter. Kind and status match exactly; the date range is inclusive over
// the creation time.
func (s *service) GetTransactionHistory(ctx context.Context, filter *HistoryFilter) ([]models.Transaction, error) {
	if err := s.simulate("transaction_history", "Failed to fetch transaction history. Please try again."); err != nil {
		return nil, err
	}

	all := s.demoTransactions()
	if filter == nil {
		return all, nil
	}

	matched := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.From != nil && tx.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && tx.CreatedAt.After(*filter.To) {
			continue
		}
		matched = append(matched, tx)
	}
	return matched, nil
}

// demoTransactions fabricates the ledger relative to the clock so relative
// date filters behave sensibly.
func (s *service) demoTransactions() []models.Transaction {
	now := s.now()
	at := func(ago time.Duration) time.Time { return now.Add(-ago) }
	done := func(t time.Time) *time.Time { settled := t.Add(45 * time.Second); return &settled }

	t1 := at(2 * time.Hour)
	t2 := at(26 * time.Hour)
	t3 := at(3 * 24 * time.Hour)
	t4 := at(6 * 24 * time.Hour)

	return []models.Transaction{
		{
			ID:              "txn-demo-1",
			UserID:          s.profile.UserID,
			Type:            models.TransactionTypePay,
			Status:          models.TransactionStatusSuccess,
			Amount:          decimal.NewFromInt(2500),
			Currency:        s.cfg.Currency,
			Description:     "Lunch payment",
			ReferenceID:     "TXN123456789",
			ProtocolRefID:   "123456789012345",
			SenderAddress:   s.profile.Address,
			ReceiverAddress: "priya.patel@paytm",
			SenderAccountID: "acc-1",
			CreatedAt:       t1,
			CompletedAt:     done(t1),
		},
		{
			ID:            "txn-demo-2",
			UserID:        s.profile.UserID,
			Type:          models.TransactionTypeCollect,
			Status:        models.TransactionStatusSuccess,
			Amount:        decimal.NewFromInt(1200),
			Currency:      s.cfg.Currency,
			Description:   "Shared cab fare",
			ReferenceID:   "TXN123456790",
			ProtocolRefID: "123456789012346",
			SenderAddress: "amit.verma@okicici",
			CreatedAt:     t2,
			CompletedAt:   done(t2),
		},
		{
			ID:            "txn-demo-3",
			UserID:        s.profile.UserID,
			Type:          models.TransactionTypePay,
			Status:        models.TransactionStatusFailed,
			Amount:        decimal.RequireFromString("540.25"),
			Currency:      s.cfg.Currency,
			Description:   "Grocery store",
			ReferenceID:   "TXN123456791",
			ProtocolRefID: "123456789012347",
			SenderAddress: s.profile.Address,
			ReceiverPhone: "9123456780",
			CreatedAt:     t3,
			FailureReason: "Declined by remitter bank",
		},
		{
			ID:              "txn-demo-4",
			UserID:          s.profile.UserID,
			Type:            models.TransactionTypeRequest,
			Status:          models.TransactionStatusPending,
			Amount:          decimal.NewFromInt(800),
			Currency:        s.cfg.Currency,
			Description:     "Movie tickets",
			ReferenceID:     "TXN123456792",
			ProtocolRefID:   "123456789012348",
			ReceiverAddress: "sneha.rao@gpay",
			CreatedAt:       t4,
		},
	}
}
