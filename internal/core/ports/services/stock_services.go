package services

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// StockService records stock movements and serves stock reports.
type StockService interface {
	// RecordStockIn records a purchase: the transaction insert and the
	// product stock increment commit or roll back together.
	RecordStockIn(ctx context.Context, userID string, req dto.RecordStockRequest) (*domain.StockTransaction, error)
	// RecordStockOut records a sale; it fails with ErrInsufficientStock when
	// the quantity exceeds on-hand stock, leaving both tables untouched.
	RecordStockOut(ctx context.Context, userID string, req dto.RecordStockRequest) (*domain.StockTransaction, error)
	StockHistory(ctx context.Context, userID, productID string) ([]domain.StockTransaction, error)
	TopProducts(ctx context.Context, userID string) ([]domain.TopProduct, error)
}
