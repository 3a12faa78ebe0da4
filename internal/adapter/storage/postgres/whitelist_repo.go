package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WhitelistRepo implements ports.WhitelistRepository. Entries keep an
// insertion-order position so they can be enumerated by index.
type WhitelistRepo struct {
	pool Pool
}

// NewWhitelistRepo creates a new WhitelistRepo.
func NewWhitelistRepo(pool Pool) *WhitelistRepo {
	return &WhitelistRepo{pool: pool}
}

// Contains reports whether a token is whitelisted for the given kind.
func (r *WhitelistRepo) Contains(ctx context.Context, kind domain.WhitelistKind, token domain.Address) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM whitelists WHERE kind = $1 AND token = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, kind, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("check whitelist: %w", err)
	}
	return exists, nil
}

// Add appends a token to the whitelist. Re-adding an existing token is a
// no-op and keeps its original position.
func (r *WhitelistRepo) Add(ctx context.Context, entry *domain.WhitelistEntry) error {
	query := `INSERT INTO whitelists (kind, token, position, added_by, created_at)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0), $3, $4
		FROM whitelists WHERE kind = $1
		ON CONFLICT (kind, token) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, entry.Kind, entry.Token, entry.AddedBy, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("add whitelist entry: %w", err)
	}
	return nil
}

// Remove deletes a token from the whitelist. Removing an absent token is
// a no-op.
func (r *WhitelistRepo) Remove(ctx context.Context, kind domain.WhitelistKind, token domain.Address) error {
	query := `DELETE FROM whitelists WHERE kind = $1 AND token = $2`

	if _, err := r.pool.Exec(ctx, query, kind, token); err != nil {
		return fmt.Errorf("remove whitelist entry: %w", err)
	}
	return nil
}

// Count returns the number of whitelisted tokens for a kind.
func (r *WhitelistRepo) Count(ctx context.Context, kind domain.WhitelistKind) (int64, error) {
	query := `SELECT COUNT(*) FROM whitelists WHERE kind = $1`

	var n int64
	if err := r.pool.QueryRow(ctx, query, kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("count whitelist: %w", err)
	}
	return n, nil
}

// GetByIndex returns the i-th whitelisted token in insertion order.
func (r *WhitelistRepo) GetByIndex(ctx context.Context, kind domain.WhitelistKind, index int64) (domain.Address, error) {
	query := `SELECT token FROM whitelists
		WHERE kind = $1 ORDER BY position LIMIT 1 OFFSET $2`

	var token domain.Address
	err := r.pool.QueryRow(ctx, query, kind, index).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ZeroAddress, nil
		}
		return domain.ZeroAddress, fmt.Errorf("get whitelist entry by index: %w", err)
	}
	return token, nil
}

// List returns all whitelisted tokens for a kind in insertion order.
func (r *WhitelistRepo) List(ctx context.Context, kind domain.WhitelistKind) ([]domain.WhitelistEntry, error) {
	query := `SELECT kind, token, position, added_by, created_at FROM whitelists
		WHERE kind = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list whitelist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WhitelistEntry
	for rows.Next() {
		entry := domain.WhitelistEntry{}
		if err := rows.Scan(&entry.Kind, &entry.Token, &entry.Position, &entry.AddedBy, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan whitelist entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate whitelist: %w", err)
	}
	return entries, nil
}
