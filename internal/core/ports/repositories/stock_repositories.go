package repositories

import (
	"context"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// StockRepository provides access to the stock transaction fact stream.
type StockRepository interface {
	// SaveStockTransaction inserts the transaction and adjusts the product's
	// current stock as one atomic unit: the product row is locked, an OUT
	// movement exceeding on-hand stock fails with apperrors.ErrInsufficientStock,
	// and any failure rolls back both writes.
	SaveStockTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.StockTransaction, error)

	// ListByParty returns the party's transactions in the given direction,
	// optionally restricted to an inclusive [from, to] date range (nil means
	// unbounded on that side).
	ListByParty(ctx context.Context, userID, partyID string, direction domain.StockDirection, from, to *time.Time) ([]domain.StockTransaction, error)

	ListByProduct(ctx context.Context, userID, productID string) ([]domain.StockTransaction, error)
	TopSellingProducts(ctx context.Context, userID string, limit int) ([]domain.TopProduct, error)
}
