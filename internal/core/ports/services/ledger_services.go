package services

import (
	"context"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// LedgerService derives balances and ledgers from the fact streams.
// It never caches: every call recomputes from the store.
type LedgerService interface {
	// ComputeBalance returns the party's current balance with the aggregate
	// sums it was derived from. The balance is snapped to zero within the
	// 0.01 tolerance.
	ComputeBalance(ctx context.Context, userID, partyID string) (*domain.PartyBalance, error)

	// ComputeLedger returns the party's chronological ledger with a running
	// balance per entry, optionally limited to an inclusive date range.
	// Over the unfiltered range its closing balance equals ComputeBalance's
	// result before snapping.
	ComputeLedger(ctx context.Context, userID, partyID string, from, to *time.Time) (*domain.PartyLedger, error)

	// ComputeAllBalances returns every party's balance, ordered by absolute
	// balance descending then name ascending, plus the portfolio summary.
	ComputeAllBalances(ctx context.Context, userID string) ([]domain.PartyBalance, domain.BalanceSummary, error)
}
