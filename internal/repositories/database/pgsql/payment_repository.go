package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portsrepo "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/repositories"
)

// settlementIndex is the partial unique index that allows at most one
// settlement payment per party.
const settlementIndex = "payments_one_settlement_per_party"

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	payment.PaymentID = uuid.NewString()
	query := `
        INSERT INTO payments (payment_id, user_id, party_id, amount, mode, date, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.OwnerUserID,
		payment.PartyID,
		payment.Amount,
		payment.Mode,
		payment.Date,
		payment.Note,
		payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, settlementIndex) {
			return nil, apperrors.ErrAlreadySettled
		}
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	return &payment, nil
}

const paymentColumns = `
    p.payment_id, p.user_id, p.party_id, p.amount, p.mode, p.date, p.note, p.created_at,
    pa.name AS party_name, pa.type AS party_type`

const paymentJoins = `
    FROM payments p
    JOIN parties pa ON pa.party_id = p.party_id`

func scanPayment(rows pgx.Rows) (domain.Payment, error) {
	var p domain.Payment
	err := rows.Scan(
		&p.PaymentID,
		&p.OwnerUserID,
		&p.PartyID,
		&p.Amount,
		&p.Mode,
		&p.Date,
		&p.Note,
		&p.CreatedAt,
		&p.PartyName,
		&p.PartyType,
	)
	return p, err
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + paymentJoins + `
        WHERE p.user_id = $1
        ORDER BY p.date DESC, p.created_at DESC;
    `
	return r.queryPayments(ctx, query, userID)
}

func (r *PgxPaymentRepository) ListByParty(ctx context.Context, userID, partyID string, from, to *time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + paymentJoins + `
        WHERE p.user_id = $1 AND p.party_id = $2
          AND ($3::timestamptz IS NULL OR p.date >= $3)
          AND ($4::timestamptz IS NULL OR p.date <= $4)
        ORDER BY p.date ASC, p.created_at ASC;
    `
	return r.queryPayments(ctx, query, userID, partyID, from, to)
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

func (r *PgxPaymentRepository) HasSettlement(ctx context.Context, userID, partyID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE user_id = $1 AND party_id = $2 AND note = $3)`,
		userID, partyID, domain.SettlementNote,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for settlement: %w", err)
	}
	return exists, nil
}
