package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// NFTCustodyRepo implements ports.NFTCustodyRepository: the record-based
// ledger for non-fungible tokens in custody.
type NFTCustodyRepo struct {
	pool Pool
}

// NewNFTCustodyRepo creates a new NFTCustodyRepo.
func NewNFTCustodyRepo(pool Pool) *NFTCustodyRepo {
	return &NFTCustodyRepo{pool: pool}
}

// Get fetches the custody record for one token unit (without locking).
func (r *NFTCustodyRepo) Get(ctx context.Context, token domain.Address, tokenID int64) (*domain.NFTCustody, error) {
	query := `SELECT token, token_id, depositor, created_at FROM nft_custody
		WHERE token = $1 AND token_id = $2`

	return r.scanRecord(r.pool.QueryRow(ctx, query, token, tokenID))
}

// GetForUpdate fetches the custody record with a pessimistic row lock.
// This MUST be called within a transaction.
func (r *NFTCustodyRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) (*domain.NFTCustody, error) {
	query := `SELECT token, token_id, depositor, created_at FROM nft_custody
		WHERE token = $1 AND token_id = $2 FOR UPDATE`

	return r.scanRecord(tx.QueryRow(ctx, query, token, tokenID))
}

// Create inserts a custody record within a transaction.
func (r *NFTCustodyRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.NFTCustody) error {
	query := `INSERT INTO nft_custody (token, token_id, depositor, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, rec.Token, rec.TokenID, rec.Depositor, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert nft custody record: %w", err)
	}
	return nil
}

// Delete removes a custody record within a transaction.
func (r *NFTCustodyRepo) Delete(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) error {
	query := `DELETE FROM nft_custody WHERE token = $1 AND token_id = $2`

	tag, err := tx.Exec(ctx, query, token, tokenID)
	if err != nil {
		return fmt.Errorf("delete nft custody record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nft custody record not found: %s/%d", token, tokenID)
	}
	return nil
}

func (r *NFTCustodyRepo) scanRecord(row pgx.Row) (*domain.NFTCustody, error) {
	rec := &domain.NFTCustody{}
	err := row.Scan(&rec.Token, &rec.TokenID, &rec.Depositor, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nft custody record: %w", err)
	}
	return rec, nil
}
