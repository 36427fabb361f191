package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDirection is the movement direction of a stock transaction.
type StockDirection string

const (
	StockIn  StockDirection = "IN"  // purchase from a supplier
	StockOut StockDirection = "OUT" // sale to a client
)

// StockTransaction is an immutable movement fact. TotalAmount is always
// quantity x rate, computed once at creation. Rows are never updated; the
// only delete path is the cascade during party removal.
type StockTransaction struct {
	TransactionID string          `json:"transactionID"`
	OwnerUserID   string          `json:"-"`
	ProductID     string          `json:"productID"`
	PartyID       string          `json:"partyID"`
	Direction     StockDirection  `json:"direction"`
	Quantity      int64           `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	InvoiceNo     string          `json:"invoiceNo"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`

	// Joined display fields, populated on reads only.
	ProductName string `json:"productName,omitempty"`
	PartyName   string `json:"partyName,omitempty"`
}
