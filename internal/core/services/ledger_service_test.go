package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockPartyRepo     *MockPartyRepository
	mockStockRepo     *MockStockRepository
	mockPaymentRepo   *MockPaymentRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.LedgerService
	userID            string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewLedgerService(suite.mockPartyRepo, suite.mockStockRepo, suite.mockPaymentRepo, suite.mockReportingRepo)
	suite.userID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) clientParty(opening string) *domain.Party {
	return &domain.Party{
		PartyID:        uuid.NewString(),
		OwnerUserID:    suite.userID,
		Name:           "Sharma Stores",
		Type:           domain.PartyClient,
		OpeningBalance: d(opening),
	}
}

// --- ComputeBalance ---

func (suite *LedgerServiceTestSuite) TestComputeBalance_ClientFormula() {
	ctx := context.Background()
	party := suite.clientParty("100")

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockReportingRepo.On("GetPartyAggregates", ctx, suite.userID, party.PartyID).Return(&portsrepo.PartyAggregates{
		TotalSales:     d("250"),
		TotalPurchases: d("30"),
		TotalPayments:  d("120"),
	}, nil).Once()

	balance, err := suite.service.ComputeBalance(ctx, suite.userID, party.PartyID)

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	// 100 + 250 - 30 - 120 = 200
	suite.True(balance.CurrentBalance.Equal(d("200")), "got %s", balance.CurrentBalance)
	suite.Equal(party.Name, balance.PartyName)
	suite.Equal(domain.PartyClient, balance.PartyType)
	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestComputeBalance_SupplierIgnoresSales() {
	ctx := context.Background()
	party := suite.clientParty("0")
	party.Type = domain.PartySupplier

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockReportingRepo.On("GetPartyAggregates", ctx, suite.userID, party.PartyID).Return(&portsrepo.PartyAggregates{
		TotalSales:     d("9999"),
		TotalPurchases: d("500"),
		TotalPayments:  d("300"),
	}, nil).Once()

	balance, err := suite.service.ComputeBalance(ctx, suite.userID, party.PartyID)

	suite.Require().NoError(err)
	// 0 - 500 + 300 = -200, sales never enter a supplier balance
	suite.True(balance.CurrentBalance.Equal(d("-200")), "got %s", balance.CurrentBalance)
}

func (suite *LedgerServiceTestSuite) TestComputeBalance_SnapsNearZero() {
	ctx := context.Background()
	party := suite.clientParty("0.009")

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockReportingRepo.On("GetPartyAggregates", ctx, suite.userID, party.PartyID).Return(&portsrepo.PartyAggregates{
		TotalSales:     decimal.Zero,
		TotalPurchases: decimal.Zero,
		TotalPayments:  decimal.Zero,
	}, nil).Once()

	balance, err := suite.service.ComputeBalance(ctx, suite.userID, party.PartyID)

	suite.Require().NoError(err)
	suite.True(balance.CurrentBalance.IsZero(), "got %s", balance.CurrentBalance)
}

func (suite *LedgerServiceTestSuite) TestComputeBalance_PartyNotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, partyID).Return(nil, apperrors.ErrNotFound).Once()

	balance, err := suite.service.ComputeBalance(ctx, suite.userID, partyID)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetPartyAggregates", mock.Anything, mock.Anything, mock.Anything)
}

// --- ComputeLedger ---

func (suite *LedgerServiceTestSuite) TestComputeLedger_OrdersAndRunsBalance() {
	ctx := context.Background()
	party := suite.clientParty("100")
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	sales := []domain.StockTransaction{
		{Direction: domain.StockOut, TotalAmount: d("50"), Date: day2, InvoiceNo: "INV-2", ProductName: "Cola 500ml", CreatedAt: day2.Add(10 * time.Hour)},
		{Direction: domain.StockOut, TotalAmount: d("80"), Date: day1, InvoiceNo: "INV-1", ProductName: "Cola 500ml", CreatedAt: day1.Add(9 * time.Hour)},
	}
	payments := []domain.Payment{
		{Amount: d("60"), Mode: domain.PaymentCash, Date: day1, CreatedAt: day1.Add(15 * time.Hour)},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockOut, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockIn, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockPaymentRepo.On("ListByParty", ctx, suite.userID, party.PartyID, (*time.Time)(nil), (*time.Time)(nil)).Return(payments, nil).Once()

	ledger, err := suite.service.ComputeLedger(ctx, suite.userID, party.PartyID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 3)

	// Day 1 sale, then day 1 payment, then day 2 sale.
	suite.Equal(domain.EntrySale, ledger.Entries[0].Kind)
	suite.Equal(domain.EntryPayment, ledger.Entries[1].Kind)
	suite.Equal(domain.EntrySale, ledger.Entries[2].Kind)

	// 100 +80 = 180, -60 = 120, +50 = 170
	suite.True(ledger.Entries[0].RunningBalance.Equal(d("180")), "got %s", ledger.Entries[0].RunningBalance)
	suite.True(ledger.Entries[1].RunningBalance.Equal(d("120")), "got %s", ledger.Entries[1].RunningBalance)
	suite.True(ledger.Entries[2].RunningBalance.Equal(d("170")), "got %s", ledger.Entries[2].RunningBalance)
	suite.True(ledger.ClosingBalance.Equal(d("170")), "got %s", ledger.ClosingBalance)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_SameInstantTieBreak() {
	ctx := context.Background()
	party := suite.clientParty("0")
	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	at := day.Add(11 * time.Hour)

	sales := []domain.StockTransaction{
		{Direction: domain.StockOut, TotalAmount: d("100"), Date: day, CreatedAt: at},
	}
	purchases := []domain.StockTransaction{
		{Direction: domain.StockIn, TotalAmount: d("40"), Date: day, CreatedAt: at},
	}
	payments := []domain.Payment{
		{Amount: d("25"), Mode: domain.PaymentOnline, Date: day, CreatedAt: at},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockOut, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockIn, (*time.Time)(nil), (*time.Time)(nil)).Return(purchases, nil).Once()
	suite.mockPaymentRepo.On("ListByParty", ctx, suite.userID, party.PartyID, (*time.Time)(nil), (*time.Time)(nil)).Return(payments, nil).Once()

	ledger, err := suite.service.ComputeLedger(ctx, suite.userID, party.PartyID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 3)
	suite.Equal(domain.EntrySale, ledger.Entries[0].Kind)
	suite.Equal(domain.EntryPurchase, ledger.Entries[1].Kind)
	suite.Equal(domain.EntryPayment, ledger.Entries[2].Kind)
	// 0 +100 -40 -25 = 35
	suite.True(ledger.ClosingBalance.Equal(d("35")), "got %s", ledger.ClosingBalance)
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_ClosingMatchesBalanceBeforeSnap() {
	ctx := context.Background()
	party := suite.clientParty("10")
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	sales := []domain.StockTransaction{
		{Direction: domain.StockOut, TotalAmount: d("90.005"), Date: day, CreatedAt: day},
	}
	payments := []domain.Payment{
		{Amount: d("100"), Mode: domain.PaymentCash, Date: day.AddDate(0, 0, 1), CreatedAt: day.AddDate(0, 0, 1)},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil)
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockOut, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockIn, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockPaymentRepo.On("ListByParty", ctx, suite.userID, party.PartyID, (*time.Time)(nil), (*time.Time)(nil)).Return(payments, nil).Once()
	suite.mockReportingRepo.On("GetPartyAggregates", ctx, suite.userID, party.PartyID).Return(&portsrepo.PartyAggregates{
		TotalSales:     d("90.005"),
		TotalPurchases: decimal.Zero,
		TotalPayments:  d("100"),
	}, nil).Once()

	ledger, err := suite.service.ComputeLedger(ctx, suite.userID, party.PartyID, nil, nil)
	suite.Require().NoError(err)
	balance, err := suite.service.ComputeBalance(ctx, suite.userID, party.PartyID)
	suite.Require().NoError(err)

	// The raw fold lands at 0.005. The ledger keeps it; the scalar read
	// snaps it to zero.
	suite.True(ledger.ClosingBalance.Equal(d("0.005")), "got %s", ledger.ClosingBalance)
	suite.True(balance.CurrentBalance.IsZero(), "got %s", balance.CurrentBalance)
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_EmptyFactsYieldsOpening() {
	ctx := context.Background()
	party := suite.clientParty("42")

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockOut, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockIn, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockPaymentRepo.On("ListByParty", ctx, suite.userID, party.PartyID, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Payment{}, nil).Once()

	ledger, err := suite.service.ComputeLedger(ctx, suite.userID, party.PartyID, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(ledger.Entries)
	suite.NotNil(ledger.Entries)
	suite.True(ledger.ClosingBalance.Equal(d("42")), "got %s", ledger.ClosingBalance)
}

func (suite *LedgerServiceTestSuite) TestComputeLedger_PassesDateRange() {
	ctx := context.Background()
	party := suite.clientParty("0")
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.userID, party.PartyID).Return(party, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockOut, &from, &to).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockStockRepo.On("ListByParty", ctx, suite.userID, party.PartyID, domain.StockIn, &from, &to).Return([]domain.StockTransaction{}, nil).Once()
	suite.mockPaymentRepo.On("ListByParty", ctx, suite.userID, party.PartyID, &from, &to).Return([]domain.Payment{}, nil).Once()

	_, err := suite.service.ComputeLedger(ctx, suite.userID, party.PartyID, &from, &to)

	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

// --- ComputeAllBalances ---

func (suite *LedgerServiceTestSuite) TestComputeAllBalances_OrderAndSummary() {
	ctx := context.Background()
	rows := []domain.PartyBalance{
		{PartyID: "a", PartyName: "Anand Traders", PartyType: domain.PartyClient, OpeningBalance: d("0"), TotalSales: d("100"), TotalPurchases: decimal.Zero, TotalPayments: decimal.Zero},
		{PartyID: "b", PartyName: "Verma Beverages", PartyType: domain.PartySupplier, OpeningBalance: d("0"), TotalSales: decimal.Zero, TotalPurchases: d("300"), TotalPayments: d("50")},
		{PartyID: "c", PartyName: "Gupta Stores", PartyType: domain.PartyClient, OpeningBalance: d("0"), TotalSales: d("30"), TotalPurchases: decimal.Zero, TotalPayments: d("60")},
	}

	suite.mockReportingRepo.On("ListPartyAggregates", ctx, suite.userID).Return(rows, nil).Once()

	balances, summary, err := suite.service.ComputeAllBalances(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 3)

	// Supplier owes -250, client +100, client -30: sorted by |balance| desc.
	suite.Equal("Verma Beverages", balances[0].PartyName)
	suite.Equal("Anand Traders", balances[1].PartyName)
	suite.Equal("Gupta Stores", balances[2].PartyName)

	// Receivable counts only positive client balances, payable only negative
	// supplier balances.
	suite.True(summary.TotalReceivable.Equal(d("100")), "got %s", summary.TotalReceivable)
	suite.True(summary.TotalPayable.Equal(d("250")), "got %s", summary.TotalPayable)
}

func (suite *LedgerServiceTestSuite) TestComputeAllBalances_TieBrokenByName() {
	ctx := context.Background()
	rows := []domain.PartyBalance{
		{PartyID: "z", PartyName: "Zoya Agencies", PartyType: domain.PartyClient, OpeningBalance: d("50")},
		{PartyID: "a", PartyName: "Arjun Retail", PartyType: domain.PartyClient, OpeningBalance: d("50")},
	}

	suite.mockReportingRepo.On("ListPartyAggregates", ctx, suite.userID).Return(rows, nil).Once()

	balances, _, err := suite.service.ComputeAllBalances(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Arjun Retail", balances[0].PartyName)
	suite.Equal("Zoya Agencies", balances[1].PartyName)
}

func (suite *LedgerServiceTestSuite) TestComputeAllBalances_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockReportingRepo.On("ListPartyAggregates", ctx, suite.userID).Return(nil, expectedErr).Once()

	balances, _, err := suite.service.ComputeAllBalances(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(balances)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
