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

const topProductsLimit = 5

// stockService records stock movements and serves stock reports.
type stockService struct {
	BaseService
	productRepo portsrepo.ProductRepository
	partyRepo   portsrepo.PartyReader
	stockRepo   portsrepo.StockRepository
}

// NewStockService creates a new stock service.
func NewStockService(
	productRepo portsrepo.ProductRepository,
	partyRepo portsrepo.PartyReader,
	stockRepo portsrepo.StockRepository,
) portssvc.StockService {
	return &stockService{
		productRepo: productRepo,
		partyRepo:   partyRepo,
		stockRepo:   stockRepo,
	}
}

var _ portssvc.StockService = (*stockService)(nil)

func (s *stockService) RecordStockIn(ctx context.Context, userID string, req dto.RecordStockRequest) (*domain.StockTransaction, error) {
	return s.recordMovement(ctx, userID, req, domain.StockIn)
}

func (s *stockService) RecordStockOut(ctx context.Context, userID string, req dto.RecordStockRequest) (*domain.StockTransaction, error) {
	return s.recordMovement(ctx, userID, req, domain.StockOut)
}

func (s *stockService) recordMovement(ctx context.Context, userID string, req dto.RecordStockRequest, direction domain.StockDirection) (*domain.StockTransaction, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.productRepo.FindProductByID(ctx, userID, req.ProductID); err != nil {
		return nil, err
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, userID, req.PartyID); err != nil {
		return nil, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	txn := domain.StockTransaction{
		OwnerUserID: userID,
		ProductID:   req.ProductID,
		PartyID:     req.PartyID,
		Direction:   direction,
		Quantity:    req.Quantity,
		Rate:        req.Rate,
		TotalAmount: req.Rate.Mul(decimal.NewFromInt(req.Quantity)),
		InvoiceNo:   req.InvoiceNo,
		Date:        date,
		Note:        req.Note,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.stockRepo.SaveStockTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to record stock movement",
			slog.String("product_id", req.ProductID),
			slog.String("direction", string(direction)))
		return nil, err
	}

	s.LogInfo(ctx, "Stock movement recorded",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("product_id", saved.ProductID),
		slog.String("direction", string(direction)),
		slog.Int64("quantity", saved.Quantity))
	return saved, nil
}

func (s *stockService) StockHistory(ctx context.Context, userID, productID string) ([]domain.StockTransaction, error) {
	if _, err := s.productRepo.FindProductByID(ctx, userID, productID); err != nil {
		return nil, err
	}
	history, err := s.stockRepo.ListByProduct(ctx, userID, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read stock history", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to read stock history for product %s: %w", productID, err)
	}
	return history, nil
}

func (s *stockService) TopProducts(ctx context.Context, userID string) ([]domain.TopProduct, error) {
	top, err := s.stockRepo.TopSellingProducts(ctx, userID, topProductsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to read top products")
		return nil, fmt.Errorf("failed to read top products: %w", err)
	}
	if top == nil {
		top = []domain.TopProduct{}
	}
	return top, nil
}
