package dto

import (
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type" binding:"required,oneof=client supplier"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Type is accepted only so a change attempt can be rejected explicitly: the
// role is immutable after creation because every historical balance
// computation is signed by it.
type UpdatePartyRequest struct {
	Type           *string          `json:"type"`
	Name           *string          `json:"name"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID        string          `json:"partyID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		Name:           p.Name,
		Type:           string(p.Type),
		Phone:          p.Phone,
		Address:        p.Address,
		OpeningBalance: p.OpeningBalance,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to response DTOs.
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
