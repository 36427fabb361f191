package domain

import (
	"github.com/shopspring/decimal"
)

// StockStatus flags a product whose on-hand stock fell to or below its minimum.
type StockStatus string

const (
	StockOK  StockStatus = "OK"
	StockLow StockStatus = "LOW"
)

// Product is a sellable item. CurrentStock is adjusted atomically with every
// stock transaction insert; it is never written outside that transaction.
type Product struct {
	ProductID    string          `json:"productID"`
	OwnerUserID  string          `json:"-"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Size         string          `json:"size"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
	MinStock     int64           `json:"minStock"`
	CurrentStock int64           `json:"currentStock"`
	AuditFields
}

// Status reports whether the product is at or below its minimum stock level.
func (p Product) Status() StockStatus {
	if p.CurrentStock <= p.MinStock {
		return StockLow
	}
	return StockOK
}
