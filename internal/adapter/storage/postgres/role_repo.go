package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository.
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// HasRole reports membership of a principal in a role within one registry.
func (r *RoleRepo) HasRole(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM role_grants WHERE registry_id = $1 AND role = $2 AND principal = $3)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, registryID, role, principal).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check role membership: %w", err)
	}
	return exists, nil
}

// Grant inserts a role membership. Granting an existing membership is a
// no-op.
func (r *RoleRepo) Grant(ctx context.Context, g *domain.RoleGrant) error {
	query := `INSERT INTO role_grants (registry_id, role, principal, granted_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (registry_id, role, principal) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, g.RegistryID, g.Role, g.Principal, g.GrantedBy, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert role grant: %w", err)
	}
	return nil
}

// Revoke removes a role membership. Revoking a non-member is a no-op.
func (r *RoleRepo) Revoke(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) error {
	query := `DELETE FROM role_grants WHERE registry_id = $1 AND role = $2 AND principal = $3`

	_, err := r.pool.Exec(ctx, query, registryID, role, principal)
	if err != nil {
		return fmt.Errorf("delete role grant: %w", err)
	}
	return nil
}

// AdminRole returns the role administering `role`. When no explicit admin
// has been set the super-admin role administers by default.
func (r *RoleRepo) AdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role) (domain.Role, error) {
	query := `SELECT admin_role FROM role_admins WHERE registry_id = $1 AND role = $2`

	var admin domain.Role
	err := r.pool.QueryRow(ctx, query, registryID, role).Scan(&admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoleSuperAdmin, nil
		}
		return "", fmt.Errorf("get admin role: %w", err)
	}
	return admin, nil
}

// SetAdminRole reassigns which role administers `role`.
func (r *RoleRepo) SetAdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role, admin domain.Role) error {
	query := `INSERT INTO role_admins (registry_id, role, admin_role, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (registry_id, role) DO UPDATE SET admin_role = EXCLUDED.admin_role, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, registryID, role, admin)
	if err != nil {
		return fmt.Errorf("set admin role: %w", err)
	}
	return nil
}
