package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// PartyAggregates are the three non-negative fact sums a balance is derived
// from. Missing facts aggregate to zero.
type PartyAggregates struct {
	TotalSales     decimal.Decimal
	TotalPurchases decimal.Decimal
	TotalPayments  decimal.Decimal
}

// ReportingRepository serves the aggregate reads behind balance computations.
type ReportingRepository interface {
	// GetPartyAggregates returns the fact sums for a single party.
	GetPartyAggregates(ctx context.Context, userID, partyID string) (*PartyAggregates, error)

	// ListPartyAggregates returns one row per party with its fact sums.
	// CurrentBalance on the returned rows is left unset; the caller derives it.
	ListPartyAggregates(ctx context.Context, userID string) ([]domain.PartyBalance, error)
}
