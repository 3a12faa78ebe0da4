package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// vaultBalanceKey is the single row key for the native custody balance.
const vaultBalanceKey = "native"

// CustodyRepo implements ports.CustodyRepository. The native custody
// total lives in a single vault_balances row updated by delta.
type CustodyRepo struct {
	pool Pool
}

// NewCustodyRepo creates a new CustodyRepo.
func NewCustodyRepo(pool Pool) *CustodyRepo {
	return &CustodyRepo{pool: pool}
}

// NativeBalance returns the total native value held in custody.
func (r *CustodyRepo) NativeBalance(ctx context.Context) (int64, error) {
	query := `SELECT balance FROM vault_balances WHERE asset = $1`

	var balance int64
	err := r.pool.QueryRow(ctx, query, vaultBalanceKey).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get native custody balance: %w", err)
	}
	return balance, nil
}

// NativeBalanceForUpdate returns the native custody balance with a
// pessimistic row lock. This MUST be called within a transaction.
func (r *CustodyRepo) NativeBalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `SELECT balance FROM vault_balances WHERE asset = $1 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, vaultBalanceKey).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("lock native custody balance: %w", err)
	}
	return balance, nil
}

// AddNative adjusts the native custody balance by delta within a
// transaction. Negative deltas release custody.
func (r *CustodyRepo) AddNative(ctx context.Context, tx pgx.Tx, delta int64) error {
	query := `INSERT INTO vault_balances (asset, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (asset) DO UPDATE
		SET balance = vault_balances.balance + EXCLUDED.balance, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, vaultBalanceKey, delta); err != nil {
		return fmt.Errorf("adjust native custody balance: %w", err)
	}
	return nil
}
