package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/utils/accounting"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
)

// ledgerService derives balances and ledgers from the three fact streams.
// It holds no state and caches nothing: every call recomputes from the store.
type ledgerService struct {
	BaseService
	partyRepo     portsrepo.PartyReader
	stockRepo     portsrepo.StockRepository
	paymentRepo   portsrepo.PaymentRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	partyRepo portsrepo.PartyReader,
	stockRepo portsrepo.StockRepository,
	paymentRepo portsrepo.PaymentRepository,
	reportingRepo portsrepo.ReportingRepository,
) portssvc.LedgerService {
	return &ledgerService{
		partyRepo:     partyRepo,
		stockRepo:     stockRepo,
		paymentRepo:   paymentRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

func (s *ledgerService) ComputeBalance(ctx context.Context, userID, partyID string) (*domain.PartyBalance, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, userID, partyID)
	if err != nil {
		return nil, err
	}

	agg, err := s.reportingRepo.GetPartyAggregates(ctx, userID, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read party aggregates", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to read aggregates for party %s: %w", partyID, err)
	}

	balance := &domain.PartyBalance{
		PartyID:        party.PartyID,
		PartyName:      party.Name,
		PartyType:      party.Type,
		Phone:          party.Phone,
		OpeningBalance: party.OpeningBalance,
		TotalSales:     agg.TotalSales,
		TotalPurchases: agg.TotalPurchases,
		TotalPayments:  agg.TotalPayments,
		CurrentBalance: accounting.CurrentBalance(party.Type, party.OpeningBalance, agg.TotalSales, agg.TotalPurchases, agg.TotalPayments),
	}

	s.LogDebug(ctx, "Balance computed",
		slog.String("party_id", partyID),
		slog.String("current_balance", balance.CurrentBalance.String()))
	return balance, nil
}

// entryKindRank fixes the tie-break for same-date, same-creation-time entries:
// Sale, then Purchase, then Payment. The business logic only needs the order
// to be total and stable per party.
func entryKindRank(kind domain.EntryKind) int {
	switch kind {
	case domain.EntrySale:
		return 0
	case domain.EntryPurchase:
		return 1
	default:
		return 2
	}
}

func (s *ledgerService) ComputeLedger(ctx context.Context, userID, partyID string, from, to *time.Time) (*domain.PartyLedger, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, userID, partyID)
	if err != nil {
		return nil, err
	}

	sales, err := s.stockRepo.ListByParty(ctx, userID, partyID, domain.StockOut, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list sales for party %s: %w", partyID, err)
	}
	purchases, err := s.stockRepo.ListByParty(ctx, userID, partyID, domain.StockIn, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list purchases for party %s: %w", partyID, err)
	}
	payments, err := s.paymentRepo.ListByParty(ctx, userID, partyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list payments for party %s: %w", partyID, err)
	}

	entries := make([]domain.LedgerEntry, 0, len(sales)+len(purchases)+len(payments))
	for _, t := range sales {
		entries = append(entries, stockEntry(domain.EntrySale, t))
	}
	for _, t := range purchases {
		entries = append(entries, stockEntry(domain.EntryPurchase, t))
	}
	for _, p := range payments {
		entries = append(entries, domain.LedgerEntry{
			Kind:        domain.EntryPayment,
			Date:        p.Date,
			Credit:      p.Amount,
			Description: fmt.Sprintf("Payment (%s)", p.Mode),
			Note:        p.Note,
			CreatedAt:   p.CreatedAt,
		})
	}

	// Chronological order with a deterministic tie-break: date, then creation
	// time, then kind (Sale, Purchase, Payment).
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entryKindRank(entries[i].Kind) < entryKindRank(entries[j].Kind)
	})

	running := party.OpeningBalance
	for i := range entries {
		delta, err := accounting.EntryDelta(party.Type, entries[i].Kind, entries[i].Debit, entries[i].Credit)
		if err != nil {
			return nil, err
		}
		running = running.Add(delta)
		entries[i].RunningBalance = running
	}

	ledger := &domain.PartyLedger{
		PartyID:        party.PartyID,
		PartyName:      party.Name,
		PartyType:      party.Type,
		OpeningBalance: party.OpeningBalance,
		Entries:        entries,
		// The closing value is the raw fold result; only scalar balance
		// reads snap to zero.
		ClosingBalance: running,
	}

	s.LogDebug(ctx, "Ledger computed",
		slog.String("party_id", partyID),
		slog.Int("entry_count", len(entries)),
		slog.String("closing_balance", running.String()))
	return ledger, nil
}

func stockEntry(kind domain.EntryKind, t domain.StockTransaction) domain.LedgerEntry {
	e := domain.LedgerEntry{
		Kind:        kind,
		Date:        t.Date,
		Description: fmt.Sprintf("%s - %s - %s", kind, t.InvoiceNo, t.ProductName),
		Note:        t.Note,
		CreatedAt:   t.CreatedAt,
	}
	if kind == domain.EntrySale {
		e.Debit = t.TotalAmount
	} else {
		e.Credit = t.TotalAmount
	}
	return e
}

func (s *ledgerService) ComputeAllBalances(ctx context.Context, userID string) ([]domain.PartyBalance, domain.BalanceSummary, error) {
	rows, err := s.reportingRepo.ListPartyAggregates(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list party aggregates")
		return nil, domain.BalanceSummary{}, fmt.Errorf("failed to list party aggregates: %w", err)
	}

	for i := range rows {
		rows[i].CurrentBalance = accounting.CurrentBalance(
			rows[i].PartyType,
			rows[i].OpeningBalance,
			rows[i].TotalSales,
			rows[i].TotalPurchases,
			rows[i].TotalPayments,
		)
	}

	// Largest exposures first; names break ties so repeated calls over
	// unchanged data always agree.
	sort.SliceStable(rows, func(i, j int) bool {
		absI := rows[i].CurrentBalance.Abs()
		absJ := rows[j].CurrentBalance.Abs()
		if !absI.Equal(absJ) {
			return absI.GreaterThan(absJ)
		}
		return strings.Compare(rows[i].PartyName, rows[j].PartyName) < 0
	})

	summary := accounting.SummaryTotals(rows)

	s.LogDebug(ctx, "All balances computed",
		slog.Int("party_count", len(rows)),
		slog.String("total_receivable", summary.TotalReceivable.String()),
		slog.String("total_payable", summary.TotalPayable.String()))
	return rows, summary, nil
}
