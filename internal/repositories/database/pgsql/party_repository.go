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

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(db *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	query := `
        INSERT INTO parties (party_id, user_id, name, type, phone, address, opening_balance, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		party.PartyID,
		party.OwnerUserID,
		party.Name,
		party.Type,
		party.Phone,
		party.Address,
		party.OpeningBalance,
		party.CreatedAt,
		party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, userID, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, user_id, name, type, phone, address, opening_balance, created_at, updated_at
		FROM parties
		WHERE party_id = $1 AND user_id = $2;
	`
	var party domain.Party
	err := r.Pool.QueryRow(ctx, query, partyID, userID).Scan(
		&party.PartyID,
		&party.OwnerUserID,
		&party.Name,
		&party.Type,
		&party.Phone,
		&party.Address,
		&party.OpeningBalance,
		&party.CreatedAt,
		&party.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}
	return &party, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, userID string) ([]domain.Party, error) {
	query := `
        SELECT party_id, user_id, name, type, phone, address, opening_balance, created_at, updated_at
        FROM parties
        WHERE user_id = $1
        ORDER BY name ASC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		var party domain.Party
		err := rows.Scan(
			&party.PartyID,
			&party.OwnerUserID,
			&party.Name,
			&party.Type,
			&party.Phone,
			&party.Address,
			&party.OpeningBalance,
			&party.CreatedAt,
			&party.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, party)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", rows.Err())
	}
	return parties, nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
        UPDATE parties
        SET name = $1, phone = $2, address = $3, opening_balance = $4, updated_at = $5
        WHERE party_id = $6 AND user_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		party.Name,
		party.Phone,
		party.Address,
		party.OpeningBalance,
		party.UpdatedAt,
		party.PartyID,
		party.OwnerUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePartyCascade removes the party and all facts that reference it in one
// transaction, so a half-deleted party can never be observed.
func (r *PgxPartyRepository) DeletePartyCascade(ctx context.Context, userID, partyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE party_id = $1 AND user_id = $2`, partyID, userID); err != nil {
		return fmt.Errorf("failed to delete party payments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM stock_transactions WHERE party_id = $1 AND user_id = $2`, partyID, userID); err != nil {
		return fmt.Errorf("failed to delete party stock transactions: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM parties WHERE party_id = $1 AND user_id = $2`, partyID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit party delete: %w", err)
	}
	return nil
}
