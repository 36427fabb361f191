package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetPartyAggregates sums the three fact streams for one party. COALESCE
// turns missing facts into zero so new parties aggregate cleanly.
func (r *PgxReportingRepository) GetPartyAggregates(ctx context.Context, userID, partyID string) (*portsrepo.PartyAggregates, error) {
	query := `
        SELECT
            COALESCE((SELECT SUM(total_amount) FROM stock_transactions
                      WHERE user_id = $1 AND party_id = $2 AND direction = 'OUT'), 0) AS total_sales,
            COALESCE((SELECT SUM(total_amount) FROM stock_transactions
                      WHERE user_id = $1 AND party_id = $2 AND direction = 'IN'), 0) AS total_purchases,
            COALESCE((SELECT SUM(amount) FROM payments
                      WHERE user_id = $1 AND party_id = $2), 0) AS total_payments
        FROM parties
        WHERE user_id = $1 AND party_id = $2;
    `
	var agg portsrepo.PartyAggregates
	err := r.Pool.QueryRow(ctx, query, userID, partyID).Scan(
		&agg.TotalSales,
		&agg.TotalPurchases,
		&agg.TotalPayments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to aggregate party facts: %w", err)
	}
	return &agg, nil
}

// ListPartyAggregates returns one row per party with its fact sums. Parties
// without facts still appear via the LEFT JOINs.
func (r *PgxReportingRepository) ListPartyAggregates(ctx context.Context, userID string) ([]domain.PartyBalance, error) {
	query := `
        SELECT
            pa.party_id,
            pa.name,
            pa.type,
            pa.phone,
            pa.opening_balance,
            COALESCE(s.total_sales, 0) AS total_sales,
            COALESCE(s.total_purchases, 0) AS total_purchases,
            COALESCE(pm.total_payments, 0) AS total_payments
        FROM parties pa
        LEFT JOIN (
            SELECT party_id,
                   SUM(total_amount) FILTER (WHERE direction = 'OUT') AS total_sales,
                   SUM(total_amount) FILTER (WHERE direction = 'IN') AS total_purchases
            FROM stock_transactions
            WHERE user_id = $1
            GROUP BY party_id
        ) s ON s.party_id = pa.party_id
        LEFT JOIN (
            SELECT party_id, SUM(amount) AS total_payments
            FROM payments
            WHERE user_id = $1
            GROUP BY party_id
        ) pm ON pm.party_id = pa.party_id
        WHERE pa.user_id = $1;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query party aggregates: %w", err)
	}
	defer rows.Close()

	balances := []domain.PartyBalance{}
	for rows.Next() {
		var b domain.PartyBalance
		err := rows.Scan(
			&b.PartyID,
			&b.PartyName,
			&b.PartyType,
			&b.Phone,
			&b.OpeningBalance,
			&b.TotalSales,
			&b.TotalPurchases,
			&b.TotalPayments,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party aggregate row: %w", err)
		}
		balances = append(balances, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party aggregate rows: %w", rows.Err())
	}
	return balances, nil
}
