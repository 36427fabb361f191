package dto

import (
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	PartyID string          `json:"partyID" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Mode    string          `json:"mode" binding:"required,oneof=cash online"`
	Date    string          `json:"date"`
	Note    string          `json:"note"`
}

// ParsedDate returns the request date, defaulting to today when absent.
func (r CreatePaymentRequest) ParsedDate() (time.Time, error) {
	if r.Date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, r.Date)
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	PartyID   string          `json:"partyID"`
	PartyName string          `json:"partyName,omitempty"`
	PartyType string          `json:"partyType,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Mode      string          `json:"mode"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		PartyID:   p.PartyID,
		PartyName: p.PartyName,
		PartyType: string(p.PartyType),
		Amount:    p.Amount,
		Mode:      string(p.Mode),
		Date:      p.Date.Format(DateLayout),
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to response DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// SettlementResponse defines the data returned after clearing a balance.
type SettlementResponse struct {
	Message          string          `json:"message"`
	PreviousBalance  decimal.Decimal `json:"previousBalance"`
	SettlementAmount decimal.Decimal `json:"settlementAmount"`
	NewBalance       decimal.Decimal `json:"newBalance"`
}

// ToSettlementResponse converts a domain.Settlement to its DTO.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		Message:          "Balance cleared successfully",
		PreviousBalance:  s.PreviousBalance,
		SettlementAmount: s.SettlementAmount,
		NewBalance:       s.NewBalance,
	}
}
