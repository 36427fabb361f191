package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// partyService manages client/supplier counterparties.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyRepository) portssvc.PartyService {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartyService = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (*domain.Party, error) {
	now := time.Now().UTC()
	party := domain.Party{
		PartyID:        uuid.NewString(),
		OwnerUserID:    userID,
		Name:           req.Name,
		Type:           domain.PartyType(req.Type),
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Party created",
		slog.String("party_id", party.PartyID),
		slog.String("type", string(party.Type)))
	return &party, nil
}

func (s *partyService) GetParty(ctx context.Context, userID, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, userID, partyID)
}

func (s *partyService) ListParties(ctx context.Context, userID string) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

// UpdateParty applies contact and opening-balance changes. The party type is
// not updatable: all historical signed computations depend on it.
func (s *partyService) UpdateParty(ctx context.Context, userID, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, userID, partyID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil && domain.PartyType(*req.Type) != party.Type {
		return nil, fmt.Errorf("%w: party type cannot be changed after creation", apperrors.ErrValidation)
	}

	updated := false
	if req.Name != nil {
		party.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
		updated = true
	}
	if req.Address != nil {
		party.Address = *req.Address
		updated = true
	}
	if req.OpeningBalance != nil {
		party.OpeningBalance = *req.OpeningBalance
		updated = true
	}
	if !updated {
		return party, nil
	}

	party.UpdatedAt = time.Now().UTC()
	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party updated", slog.String("party_id", partyID))
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, userID, partyID string) error {
	if _, err := s.partyRepo.FindPartyByID(ctx, userID, partyID); err != nil {
		return err
	}

	if err := s.partyRepo.DeletePartyCascade(ctx, userID, partyID); err != nil {
		s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		return err
	}

	s.LogInfo(ctx, "Party deleted with cascaded facts", slog.String("party_id", partyID))
	return nil
}
