package repositories

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// PartyReader provides read-only access to parties.
type PartyReader interface {
	// FindPartyByID returns the party if it exists and belongs to the user,
	// apperrors.ErrNotFound otherwise.
	FindPartyByID(ctx context.Context, userID, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, userID string) ([]domain.Party, error)
}

// PartyRepository provides full access to parties.
type PartyRepository interface {
	PartyReader
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
	// DeletePartyCascade removes the party together with its payments and
	// stock transactions in a single database transaction.
	DeletePartyCascade(ctx context.Context, userID, partyID string) error
}
