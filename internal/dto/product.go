package dto

import (
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Brand        string          `json:"brand" binding:"required"`
	Size         string          `json:"size" binding:"required"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
	MinStock     *int64          `json:"minStock"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// CurrentStock is absent: stock moves only through stock transactions.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Brand        *string          `json:"brand"`
	Size         *string          `json:"size"`
	PurchaseRate *decimal.Decimal `json:"purchaseRate"`
	SaleRate     *decimal.Decimal `json:"saleRate"`
	MinStock     *int64           `json:"minStock"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Size         string          `json:"size"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
	MinStock     int64           `json:"minStock"`
	CurrentStock int64           `json:"currentStock"`
	StockStatus  string          `json:"stockStatus"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Brand:        p.Brand,
		Size:         p.Size,
		PurchaseRate: p.PurchaseRate,
		SaleRate:     p.SaleRate,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		StockStatus:  string(p.Status()),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
