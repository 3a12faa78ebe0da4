package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ControllerRepo implements ports.ControllerRepository, the append-only
// history of access registries bound to the gateway.
type ControllerRepo struct {
	pool Pool
}

// NewControllerRepo creates a new ControllerRepo.
func NewControllerRepo(pool Pool) *ControllerRepo {
	return &ControllerRepo{pool: pool}
}

// Append records a new registry binding within a transaction. The version
// is assigned sequentially starting at zero.
func (r *ControllerRepo) Append(ctx context.Context, tx pgx.Tx, registryID uuid.UUID, setBy domain.Address) (*domain.ControllerVersion, error) {
	query := `INSERT INTO access_control_versions (version, registry_id, set_by, created_at)
		SELECT COALESCE(MAX(version) + 1, 0), $1, $2, NOW()
		FROM access_control_versions
		RETURNING version, created_at`

	cv := &domain.ControllerVersion{RegistryID: registryID, SetBy: setBy}
	err := tx.QueryRow(ctx, query, registryID, setBy).Scan(&cv.Version, &cv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("append controller version: %w", err)
	}

	identQuery := `SELECT identifier FROM registries WHERE id = $1`
	if err := tx.QueryRow(ctx, identQuery, registryID).Scan(&cv.RegistryIdentifier); err != nil {
		return nil, fmt.Errorf("resolve registry identifier: %w", err)
	}
	return cv, nil
}

// Current returns the most recent registry binding.
func (r *ControllerRepo) Current(ctx context.Context) (*domain.ControllerVersion, error) {
	query := `SELECT v.version, v.registry_id, r.identifier, v.set_by, v.created_at
		FROM access_control_versions v
		JOIN registries r ON r.id = v.registry_id
		ORDER BY v.version DESC LIMIT 1`

	return r.scanVersion(r.pool.QueryRow(ctx, query))
}

// GetByVersion returns the registry binding recorded at a given version.
func (r *ControllerRepo) GetByVersion(ctx context.Context, version uint64) (*domain.ControllerVersion, error) {
	query := `SELECT v.version, v.registry_id, r.identifier, v.set_by, v.created_at
		FROM access_control_versions v
		JOIN registries r ON r.id = v.registry_id
		WHERE v.version = $1`

	return r.scanVersion(r.pool.QueryRow(ctx, query, version))
}

func (r *ControllerRepo) scanVersion(row pgx.Row) (*domain.ControllerVersion, error) {
	cv := &domain.ControllerVersion{}
	err := row.Scan(&cv.Version, &cv.RegistryID, &cv.RegistryIdentifier, &cv.SetBy, &cv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get controller version: %w", err)
	}
	return cv, nil
}
