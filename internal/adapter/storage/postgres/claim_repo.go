package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ClaimRepo implements ports.ClaimRepository: the amount-based deposit
// ledger for native and fungible assets. A missing row reads as a zero
// claim.
type ClaimRepo struct {
	pool Pool
}

// NewClaimRepo creates a new ClaimRepo.
func NewClaimRepo(pool Pool) *ClaimRepo {
	return &ClaimRepo{pool: pool}
}

// Get returns the claim amount without locking.
func (r *ClaimRepo) Get(ctx context.Context, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error) {
	query := `SELECT amount FROM claims WHERE kind = $1 AND token = $2 AND principal = $3`

	var amount int64
	err := r.pool.QueryRow(ctx, query, kind, token, principal).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get claim: %w", err)
	}
	return amount, nil
}

// GetForUpdate returns the claim amount with a pessimistic row lock.
// This MUST be called within a transaction.
func (r *ClaimRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error) {
	query := `SELECT amount FROM claims WHERE kind = $1 AND token = $2 AND principal = $3 FOR UPDATE`

	var amount int64
	err := tx.QueryRow(ctx, query, kind, token, principal).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get claim for update: %w", err)
	}
	return amount, nil
}

// Add upserts the claim row, adding delta (negative to decrement) within a
// transaction.
func (r *ClaimRepo) Add(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address, delta int64) error {
	query := `INSERT INTO claims (kind, token, principal, amount, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (kind, token, principal)
		DO UPDATE SET amount = claims.amount + EXCLUDED.amount, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, kind, token, principal, delta)
	if err != nil {
		return fmt.Errorf("add claim: %w", err)
	}
	return nil
}

// Sum totals all claims against one asset.
func (r *ClaimRepo) Sum(ctx context.Context, kind domain.AssetKind, token domain.Address) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM claims WHERE kind = $1 AND token = $2`

	var total int64
	err := r.pool.QueryRow(ctx, query, kind, token).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum claims: %w", err)
	}
	return total, nil
}
