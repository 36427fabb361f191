package dto

import (
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for dates in requests and query parameters.
const DateLayout = "2006-01-02"

// RecordStockRequest defines the data needed to record a stock movement.
// The direction comes from the route (stock/in vs stock/out), not the body.
type RecordStockRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	PartyID   string          `json:"partyID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	Rate      decimal.Decimal `json:"rate"`
	InvoiceNo string          `json:"invoiceNo"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
}

// ParsedDate returns the request date, defaulting to today when absent.
func (r RecordStockRequest) ParsedDate() (time.Time, error) {
	if r.Date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, r.Date)
}

// StockTransactionResponse defines the data returned for a stock transaction.
type StockTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName,omitempty"`
	PartyID       string          `json:"partyID"`
	PartyName     string          `json:"partyName,omitempty"`
	Direction     string          `json:"direction"`
	Quantity      int64           `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	InvoiceNo     string          `json:"invoiceNo"`
	Date          string          `json:"date"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToStockTransactionResponse converts a domain.StockTransaction to its DTO.
func ToStockTransactionResponse(t *domain.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		TransactionID: t.TransactionID,
		ProductID:     t.ProductID,
		ProductName:   t.ProductName,
		PartyID:       t.PartyID,
		PartyName:     t.PartyName,
		Direction:     string(t.Direction),
		Quantity:      t.Quantity,
		Rate:          t.Rate,
		TotalAmount:   t.TotalAmount,
		InvoiceNo:     t.InvoiceNo,
		Date:          t.Date.Format(DateLayout),
		Note:          t.Note,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListStockTransactionResponse converts a slice of stock transactions.
func ToListStockTransactionResponse(txns []domain.StockTransaction) []StockTransactionResponse {
	res := make([]StockTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToStockTransactionResponse(&txns[i])
	}
	return res
}
