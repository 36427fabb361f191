package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
)

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(db *pgxpool.Pool) portsrepo.StockRepository {
	return &PgxStockRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.StockRepository = (*PgxStockRepository)(nil)

// SaveStockTransaction inserts the movement fact and adjusts the product's
// on-hand stock in one transaction. The product row is locked first so two
// concurrent OUT movements cannot both pass the stock check.
func (r *PgxStockRepository) SaveStockTransaction(ctx context.Context, txn domain.StockTransaction) (*domain.StockTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var currentStock int64
	err = tx.QueryRow(ctx,
		`SELECT current_stock FROM products WHERE product_id = $1 AND user_id = $2 FOR UPDATE`,
		txn.ProductID, txn.OwnerUserID,
	).Scan(&currentStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product row: %w", err)
	}

	delta := txn.Quantity
	if txn.Direction == domain.StockOut {
		if currentStock < txn.Quantity {
			return nil, fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientStock, currentStock, txn.Quantity)
		}
		delta = -txn.Quantity
	}

	txn.TransactionID = uuid.NewString()
	_, err = tx.Exec(ctx, `
        INSERT INTO stock_transactions (transaction_id, user_id, product_id, party_id, direction, quantity, rate, total_amount, invoice_no, date, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `,
		txn.TransactionID,
		txn.OwnerUserID,
		txn.ProductID,
		txn.PartyID,
		txn.Direction,
		txn.Quantity,
		txn.Rate,
		txn.TotalAmount,
		txn.InvoiceNo,
		txn.Date,
		txn.Note,
		txn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock transaction: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET current_stock = current_stock + $1, updated_at = $2 WHERE product_id = $3 AND user_id = $4`,
		delta, txn.CreatedAt, txn.ProductID, txn.OwnerUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust product stock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock transaction: %w", err)
	}
	return &txn, nil
}

const stockTxnColumns = `
    t.transaction_id, t.user_id, t.product_id, t.party_id, t.direction, t.quantity,
    t.rate, t.total_amount, t.invoice_no, t.date, t.note, t.created_at,
    pr.name AS product_name, pa.name AS party_name`

const stockTxnJoins = `
    FROM stock_transactions t
    JOIN products pr ON pr.product_id = t.product_id
    JOIN parties pa ON pa.party_id = t.party_id`

func scanStockTransaction(rows pgx.Rows) (domain.StockTransaction, error) {
	var t domain.StockTransaction
	err := rows.Scan(
		&t.TransactionID,
		&t.OwnerUserID,
		&t.ProductID,
		&t.PartyID,
		&t.Direction,
		&t.Quantity,
		&t.Rate,
		&t.TotalAmount,
		&t.InvoiceNo,
		&t.Date,
		&t.Note,
		&t.CreatedAt,
		&t.ProductName,
		&t.PartyName,
	)
	return t, err
}

func (r *PgxStockRepository) ListByParty(ctx context.Context, userID, partyID string, direction domain.StockDirection, from, to *time.Time) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockTxnColumns + stockTxnJoins + `
        WHERE t.user_id = $1 AND t.party_id = $2 AND t.direction = $3
          AND ($4::timestamptz IS NULL OR t.date >= $4)
          AND ($5::timestamptz IS NULL OR t.date <= $5)
        ORDER BY t.date ASC, t.created_at ASC;
    `
	return r.queryStockTransactions(ctx, query, userID, partyID, direction, from, to)
}

func (r *PgxStockRepository) ListByProduct(ctx context.Context, userID, productID string) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockTxnColumns + stockTxnJoins + `
        WHERE t.user_id = $1 AND t.product_id = $2
        ORDER BY t.date DESC, t.created_at DESC;
    `
	return r.queryStockTransactions(ctx, query, userID, productID)
}

func (r *PgxStockRepository) queryStockTransactions(ctx context.Context, query string, args ...any) ([]domain.StockTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.StockTransaction{}
	for rows.Next() {
		t, err := scanStockTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxStockRepository) TopSellingProducts(ctx context.Context, userID string, limit int) ([]domain.TopProduct, error) {
	query := `
        SELECT t.product_id, pr.name, SUM(t.quantity) AS sold
        FROM stock_transactions t
        JOIN products pr ON pr.product_id = t.product_id
        WHERE t.user_id = $1 AND t.direction = 'OUT'
        GROUP BY t.product_id, pr.name
        ORDER BY sold DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	top := []domain.TopProduct{}
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan top product row: %w", err)
		}
		top = append(top, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top product rows: %w", rows.Err())
	}
	return top, nil
}
