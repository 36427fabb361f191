package services

import (
	"context"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
)

// PaymentService records payments and performs full-balance settlements.
type PaymentService interface {
	// RecordPayment stores the payment with a positive amount regardless of
	// direction; the balance engine reconstructs the sign from party type.
	RecordPayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)
	ListPartyPayments(ctx context.Context, userID, partyID string) ([]domain.Payment, error)
	// ClearBalance emits a single settlement payment sized to bring the
	// party's balance to exactly zero. A zero balance fails with
	// ErrNothingToSettle; an existing settlement with ErrAlreadySettled.
	ClearBalance(ctx context.Context, userID, partyID string) (*domain.Settlement, error)
}
