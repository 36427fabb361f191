package dto

import (
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse returns a party's derived balance with the aggregates it
// was computed from.
type BalanceResponse struct {
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	PartyType      string          `json:"partyType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ToBalanceResponse converts a domain.PartyBalance to BalanceResponse DTO.
func ToBalanceResponse(b *domain.PartyBalance) BalanceResponse {
	return BalanceResponse{
		PartyID:        b.PartyID,
		PartyName:      b.PartyName,
		PartyType:      string(b.PartyType),
		OpeningBalance: b.OpeningBalance,
		TotalSales:     b.TotalSales,
		TotalPurchases: b.TotalPurchases,
		TotalPayments:  b.TotalPayments,
		CurrentBalance: b.CurrentBalance,
	}
}

// LedgerEntryResponse is one row of a party ledger.
type LedgerEntryResponse struct {
	TransactionType string          `json:"transactionType"`
	Date            string          `json:"date"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Description     string          `json:"description"`
	Note            string          `json:"note"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse returns a party's chronological ledger.
type LedgerResponse struct {
	PartyID        string                `json:"partyID"`
	PartyName      string                `json:"partyName"`
	PartyType      string                `json:"partyType"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Transactions   []LedgerEntryResponse `json:"transactions"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
}

// ToLedgerResponse converts a domain.PartyLedger to LedgerResponse DTO.
func ToLedgerResponse(l *domain.PartyLedger) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			TransactionType: string(e.Kind),
			Date:            e.Date.Format(DateLayout),
			Debit:           e.Debit,
			Credit:          e.Credit,
			Description:     e.Description,
			Note:            e.Note,
			RunningBalance:  e.RunningBalance,
		}
	}
	return LedgerResponse{
		PartyID:        l.PartyID,
		PartyName:      l.PartyName,
		PartyType:      string(l.PartyType),
		OpeningBalance: l.OpeningBalance,
		Transactions:   entries,
		ClosingBalance: l.ClosingBalance,
	}
}

// SummaryResponse holds portfolio-level totals.
type SummaryResponse struct {
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
}

// AllBalancesResponse returns every party's balance plus the portfolio summary.
type AllBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
	Summary  SummaryResponse   `json:"summary"`
}

// ToAllBalancesResponse converts balances and a summary to the response DTO.
func ToAllBalancesResponse(balances []domain.PartyBalance, summary domain.BalanceSummary) AllBalancesResponse {
	res := AllBalancesResponse{
		Balances: make([]BalanceResponse, len(balances)),
		Summary: SummaryResponse{
			TotalReceivable: summary.TotalReceivable,
			TotalPayable:    summary.TotalPayable,
		},
	}
	for i := range balances {
		res.Balances[i] = ToBalanceResponse(&balances[i])
	}
	return res
}
