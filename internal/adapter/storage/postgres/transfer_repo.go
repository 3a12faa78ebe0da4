package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create inserts a new journal entry within a database transaction.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := `INSERT INTO transfers (id, reference_id, direction, kind, token, token_id,
		principal, recipient, amount, initiated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.ReferenceID, t.Direction, t.Kind, t.Token, t.TokenID,
		t.Principal, t.Recipient, t.Amount, t.InitiatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID fetches a journal entry by UUID.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT id, reference_id, direction, kind, token, token_id,
		principal, recipient, amount, initiated_by, created_at
		FROM transfers WHERE id = $1`

	return r.scanTransfer(r.pool.QueryRow(ctx, query, id))
}

// List fetches journal entries with filtering and pagination.
func (r *TransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("principal = $%d", argIdx))
	args = append(args, params.Principal)
	argIdx++

	if params.Direction != nil {
		conditions = append(conditions, fmt.Sprintf("direction = $%d", argIdx))
		args = append(args, *params.Direction)
		argIdx++
	}
	if params.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, *params.Kind)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transfers %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, reference_id, direction, kind, token, token_id,
		principal, recipient, amount, initiated_by, created_at
		FROM transfers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		t := domain.Transfer{}
		err := rows.Scan(
			&t.ID, &t.ReferenceID, &t.Direction, &t.Kind, &t.Token, &t.TokenID,
			&t.Principal, &t.Recipient, &t.Amount, &t.InitiatedBy, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transfer rows: %w", err)
	}
	return transfers, total, nil
}

// GetStats retrieves aggregated journal statistics for a principal.
func (r *TransferRepo) GetStats(ctx context.Context, principal domain.Address) (*ports.TransferStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE direction = 'DEPOSIT') AS deposits,
		COUNT(*) FILTER (WHERE direction = 'WITHDRAW') AS withdrawals,
		COALESCE(SUM(amount) FILTER (WHERE direction = 'DEPOSIT' AND kind = 'NATIVE'), 0) AS native_deposited,
		COALESCE(SUM(amount) FILTER (WHERE direction = 'WITHDRAW' AND kind = 'NATIVE'), 0) AS native_withdrawn
		FROM transfers WHERE principal = $1`

	stats := &ports.TransferStats{}
	err := r.pool.QueryRow(ctx, query, principal).Scan(
		&stats.TotalTransfers, &stats.Deposits, &stats.Withdrawals,
		&stats.NativeDeposited, &stats.NativeWithdrawn,
	)
	if err != nil {
		return nil, fmt.Errorf("get transfer stats: %w", err)
	}
	return stats, nil
}

// scanTransfer is a helper to scan a single row into a Transfer.
func (r *TransferRepo) scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	t := &domain.Transfer{}
	err := row.Scan(
		&t.ID, &t.ReferenceID, &t.Direction, &t.Kind, &t.Token, &t.TokenID,
		&t.Principal, &t.Recipient, &t.Amount, &t.InitiatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transfer: %w", err)
	}
	return t, nil
}
