package services

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// PartyService manages client/supplier counterparties.
type PartyService interface {
	CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (*domain.Party, error)
	GetParty(ctx context.Context, userID, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, userID string) ([]domain.Party, error)
	UpdateParty(ctx context.Context, userID, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error)
	// DeleteParty removes the party and cascades its payments and stock
	// transactions.
	DeleteParty(ctx context.Context, userID, partyID string) error
}
