package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RegistryRepo implements ports.RegistryRepository.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

// Create inserts a new access-control registry.
func (r *RegistryRepo) Create(ctx context.Context, reg *domain.Registry) error {
	query := `INSERT INTO registries (id, identifier, created_by, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, reg.ID, reg.Identifier, reg.CreatedBy, reg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert registry: %w", err)
	}
	return nil
}

// GetByID fetches a registry by its UUID.
func (r *RegistryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registry, error) {
	query := `SELECT id, identifier, created_by, created_at FROM registries WHERE id = $1`

	return r.scanRegistry(r.pool.QueryRow(ctx, query, id))
}

// GetByIdentifier fetches a registry by its human-readable identifier.
func (r *RegistryRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.Registry, error) {
	query := `SELECT id, identifier, created_by, created_at FROM registries WHERE identifier = $1`

	return r.scanRegistry(r.pool.QueryRow(ctx, query, identifier))
}

func (r *RegistryRepo) scanRegistry(row pgx.Row) (*domain.Registry, error) {
	reg := &domain.Registry{}
	err := row.Scan(&reg.ID, &reg.Identifier, &reg.CreatedBy, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registry: %w", err)
	}
	return reg, nil
}
