package repositories

import (
	"context"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// PaymentRepository provides access to the payment fact stream.
type PaymentRepository interface {
	// SavePayment inserts a payment fact. Inserting a second settlement
	// payment for the same party fails with apperrors.ErrAlreadySettled
	// (backed by a partial unique index on the settlement note).
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)

	// ListByParty returns the party's payments, optionally restricted to an
	// inclusive [from, to] date range (nil means unbounded on that side).
	ListByParty(ctx context.Context, userID, partyID string, from, to *time.Time) ([]domain.Payment, error)

	// HasSettlement reports whether a settlement marker payment exists for
	// the party.
	HasSettlement(ctx context.Context, userID, partyID string) (bool, error)
}
