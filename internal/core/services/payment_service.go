package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
	"github.com/shopspring/decimal"
)

// paymentService records payment facts and runs full-balance settlements.
type paymentService struct {
	BaseService
	partyRepo   portsrepo.PartyReader
	paymentRepo portsrepo.PaymentRepository
	ledger      portssvc.LedgerService
}

// NewPaymentService creates a new payment service. The ledger service is
// needed to size settlements.
func NewPaymentService(
	partyRepo portsrepo.PartyReader,
	paymentRepo portsrepo.PaymentRepository,
	ledger portssvc.LedgerService,
) portssvc.PaymentService {
	return &paymentService{
		partyRepo:   partyRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
	}
}

var _ portssvc.PaymentService = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: payment amount is required and must be non-zero", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, userID, req.PartyID)
	if err != nil {
		return nil, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	// Stored magnitude is always positive; the balance engine derives the
	// direction from the party's type on every read.
	payment := domain.Payment{
		OwnerUserID: userID,
		PartyID:     party.PartyID,
		Amount:      req.Amount.Abs(),
		Mode:        domain.PaymentMode(req.Mode),
		Date:        date,
		Note:        req.Note,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("party_id", req.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", saved.PaymentID),
		slog.String("party_id", saved.PartyID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) ListPartyPayments(ctx context.Context, userID, partyID string) ([]domain.Payment, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, userID, partyID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByParty(ctx, userID, partyID, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list party payments", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list payments for party %s: %w", partyID, err)
	}
	return payments, nil
}

// ClearBalance settles a party's outstanding balance with one cash payment.
// The pre-insert settlement check is advisory; the store's partial unique
// index on the settlement note is what makes concurrent settlements safe.
func (s *paymentService) ClearBalance(ctx context.Context, userID, partyID string) (*domain.Settlement, error) {
	balance, err := s.ledger.ComputeBalance(ctx, userID, partyID)
	if err != nil {
		return nil, err
	}

	// ComputeBalance already snapped near-zero values to exactly zero.
	if balance.CurrentBalance.IsZero() {
		return nil, apperrors.ErrNothingToSettle
	}

	settled, err := s.paymentRepo.HasSettlement(ctx, userID, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing settlement", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to check settlement for party %s: %w", partyID, err)
	}
	if settled {
		return nil, apperrors.ErrAlreadySettled
	}

	now := time.Now().UTC()
	settlementAmount := balance.CurrentBalance.Abs()
	payment := domain.Payment{
		OwnerUserID: userID,
		PartyID:     partyID,
		Amount:      settlementAmount,
		Mode:        domain.PaymentCash,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Note:        domain.SettlementNote,
		CreatedAt:   now,
	}

	if _, err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to insert settlement payment", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Balance cleared",
		slog.String("party_id", partyID),
		slog.String("previous_balance", balance.CurrentBalance.String()),
		slog.String("settlement_amount", settlementAmount.String()))
	return &domain.Settlement{
		PreviousBalance:  balance.CurrentBalance,
		SettlementAmount: settlementAmount,
		NewBalance:       decimal.Zero,
	}, nil
}
