package repositories

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// ProductRepository provides access to products. CurrentStock is read-only
// here; it is adjusted exclusively by StockRepository.SaveStockTransaction.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, userID, productID string) error
}
