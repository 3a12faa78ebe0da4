package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PrincipalRepo implements ports.PrincipalRepository.
type PrincipalRepo struct {
	pool Pool
}

// NewPrincipalRepo creates a new PrincipalRepo.
func NewPrincipalRepo(pool Pool) *PrincipalRepo {
	return &PrincipalRepo{pool: pool}
}

const principalColumns = `id, username, password_hash, address, access_key, secret_key_enc, webhook_url, status, created_at, updated_at`

// Create inserts a new principal into the database.
func (r *PrincipalRepo) Create(ctx context.Context, p *domain.Principal) error {
	query := `INSERT INTO principals (` + principalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Username, p.PasswordHash, p.Address,
		p.AccessKey, p.SecretKeyEnc, p.WebhookURL, p.Status,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert principal: %w", err)
	}
	return nil
}

// GetByID fetches a principal by its UUID.
func (r *PrincipalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE id = $1`

	return r.scanPrincipal(r.pool.QueryRow(ctx, query, id))
}

// GetByAccessKey fetches a principal by its public access key.
func (r *PrincipalRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE access_key = $1`

	return r.scanPrincipal(r.pool.QueryRow(ctx, query, accessKey))
}

// GetByUsername fetches a principal by username.
func (r *PrincipalRepo) GetByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE username = $1`

	return r.scanPrincipal(r.pool.QueryRow(ctx, query, username))
}

// GetByAddress fetches a principal by its on-ledger address.
func (r *PrincipalRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE address = $1`

	return r.scanPrincipal(r.pool.QueryRow(ctx, query, address))
}

func (r *PrincipalRepo) scanPrincipal(row pgx.Row) (*domain.Principal, error) {
	p := &domain.Principal{}
	err := row.Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Address,
		&p.AccessKey, &p.SecretKeyEnc, &p.WebhookURL, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get principal: %w", err)
	}
	return p, nil
}
