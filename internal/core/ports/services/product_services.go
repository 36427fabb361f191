package services

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// ProductService manages the product catalogue.
type ProductService interface {
	CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, userID, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, userID, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, userID, productID string) error
}
