package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies which fact stream a ledger entry came from.
type EntryKind string

const (
	EntrySale     EntryKind = "Sale"     // stock OUT
	EntryPurchase EntryKind = "Purchase" // stock IN
	EntryPayment  EntryKind = "Payment"
)

// LedgerEntry is one row of a party's chronological ledger. Exactly one of
// Debit/Credit is non-zero: Sales carry a debit, Purchases and Payments carry
// a credit. RunningBalance is the balance after applying this entry.
type LedgerEntry struct {
	Kind           EntryKind       `json:"transactionType"`
	Date           time.Time       `json:"date"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description"`
	Note           string          `json:"note"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CreatedAt      time.Time       `json:"-"`
}

// PartyLedger is the ordered ledger for one party plus its closing balance.
type PartyLedger struct {
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	PartyType      PartyType       `json:"partyType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []LedgerEntry   `json:"transactions"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// PartyBalance is the derived balance of one party together with the
// aggregate sums it was computed from. It is recomputed on every read.
type PartyBalance struct {
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	PartyType      PartyType       `json:"partyType"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// BalanceSummary holds portfolio-level totals across all of a user's parties.
type BalanceSummary struct {
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
}

// Settlement is the outcome of clearing a party's balance: the balance that
// was outstanding, the payment that cleared it, and the resulting balance
// (always zero).
type Settlement struct {
	PreviousBalance  decimal.Decimal `json:"previousBalance"`
	SettlementAmount decimal.Decimal `json:"settlementAmount"`
	NewBalance       decimal.Decimal `json:"newBalance"`
}

// TopProduct is one row of the best-sellers dashboard, ranked by quantity sold.
type TopProduct struct {
	ProductID string `json:"productID"`
	Name      string `json:"product"`
	Quantity  int64  `json:"quantity"`
}
