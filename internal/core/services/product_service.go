package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

const defaultMinStock = 10

// productService manages the product catalogue.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductService {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductService = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	minStock := int64(defaultMinStock)
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:    uuid.NewString(),
		OwnerUserID:  userID,
		Name:         req.Name,
		Brand:        req.Brand,
		Size:         req.Size,
		PurchaseRate: req.PurchaseRate,
		SaleRate:     req.SaleRate,
		MinStock:     minStock,
		CurrentStock: 0,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, userID, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, userID, productID)
}

func (s *productService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *productService) ListLowStockProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListLowStockProducts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low stock products")
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, userID, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		product.Name = *req.Name
		updated = true
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
		updated = true
	}
	if req.Size != nil {
		product.Size = *req.Size
		updated = true
	}
	if req.PurchaseRate != nil {
		product.PurchaseRate = *req.PurchaseRate
		updated = true
	}
	if req.SaleRate != nil {
		product.SaleRate = *req.SaleRate
		updated = true
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
		updated = true
	}
	if !updated {
		return product, nil
	}

	product.UpdatedAt = time.Now().UTC()
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, productID string) error {
	if _, err := s.productRepo.FindProductByID(ctx, userID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, userID, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return err
	}

	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}
