package service

import (
	"context"
	"fmt"
	"time"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService: role membership
// queries and admin-gated grant/revoke within access-control registries.
type RegistryServiceImpl struct {
	registryRepo ports.RegistryRepository
	roleRepo     ports.RoleRepository
	log          zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	registryRepo ports.RegistryRepository,
	roleRepo ports.RoleRepository,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		registryRepo: registryRepo,
		roleRepo:     roleRepo,
		log:          log,
	}
}

// CreateRegistry bootstraps a fresh registry. The super-admin role is
// self-administered and granted to the creator.
func (s *RegistryServiceImpl) CreateRegistry(ctx context.Context, creator domain.Address, identifier string) (*domain.Registry, error) {
	existing, err := s.registryRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check registry identifier: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("registry identifier already in use")
	}

	now := time.Now().UTC()
	registry := &domain.Registry{
		ID:         uuid.New(),
		Identifier: identifier,
		CreatedBy:  creator,
		CreatedAt:  now,
	}
	if err := s.registryRepo.Create(ctx, registry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create registry: %w", err))
	}

	grant := &domain.RoleGrant{
		RegistryID: registry.ID,
		Role:       domain.RoleSuperAdmin,
		Principal:  creator,
		GrantedBy:  creator,
		CreatedAt:  now,
	}
	if err := s.roleRepo.Grant(ctx, grant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("grant super admin: %w", err))
	}

	s.log.Info().
		Str("registry_id", registry.ID.String()).
		Str("identifier", identifier).
		Str("creator", creator.String()).
		Msg("access registry created")

	return registry, nil
}

// GetRegistry fetches a registry by ID.
func (s *RegistryServiceImpl) GetRegistry(ctx context.Context, id uuid.UUID) (*domain.Registry, error) {
	registry, err := s.registryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return nil, apperror.ErrNotFound("registry")
	}
	return registry, nil
}

// HasRole is a pure membership query with no side effects.
func (s *RegistryServiceImpl) HasRole(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) (bool, error) {
	ok, err := s.roleRepo.HasRole(ctx, registryID, role, principal)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check role: %w", err))
	}
	return ok, nil
}

// Grant adds principal to role. The caller must hold the role's admin role.
func (s *RegistryServiceImpl) Grant(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, principal domain.Address) error {
	if err := s.requireAdmin(ctx, caller, registryID, role); err != nil {
		return err
	}

	grant := &domain.RoleGrant{
		RegistryID: registryID,
		Role:       role,
		Principal:  principal,
		GrantedBy:  caller,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.roleRepo.Grant(ctx, grant); err != nil {
		return apperror.InternalError(fmt.Errorf("grant role: %w", err))
	}

	s.log.Info().
		Str("registry_id", registryID.String()).
		Str("role", string(role)).
		Str("principal", principal.String()).
		Str("granted_by", caller.String()).
		Msg("role granted")
	return nil
}

// Revoke removes principal from role. The caller must hold the role's
// admin role. Revoking a non-member succeeds without effect.
func (s *RegistryServiceImpl) Revoke(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, principal domain.Address) error {
	if err := s.requireAdmin(ctx, caller, registryID, role); err != nil {
		return err
	}

	if err := s.roleRepo.Revoke(ctx, registryID, role, principal); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke role: %w", err))
	}

	s.log.Info().
		Str("registry_id", registryID.String()).
		Str("role", string(role)).
		Str("principal", principal.String()).
		Str("revoked_by", caller.String()).
		Msg("role revoked")
	return nil
}

// SetRoleAdmin reassigns which role administers role. The caller must hold
// the current admin role.
func (s *RegistryServiceImpl) SetRoleAdmin(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, admin domain.Role) error {
	if err := s.requireAdmin(ctx, caller, registryID, role); err != nil {
		return err
	}

	if err := s.roleRepo.SetAdminRole(ctx, registryID, role, admin); err != nil {
		return apperror.InternalError(fmt.Errorf("set admin role: %w", err))
	}

	s.log.Info().
		Str("registry_id", registryID.String()).
		Str("role", string(role)).
		Str("admin_role", string(admin)).
		Msg("role admin reassigned")
	return nil
}

// AdminRole returns the role administering role.
func (s *RegistryServiceImpl) AdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role) (domain.Role, error) {
	admin, err := s.roleRepo.AdminRole(ctx, registryID, role)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get admin role: %w", err))
	}
	return admin, nil
}

func (s *RegistryServiceImpl) requireAdmin(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role) error {
	admin, err := s.roleRepo.AdminRole(ctx, registryID, role)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get admin role: %w", err))
	}
	ok, err := s.roleRepo.HasRole(ctx, registryID, admin, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check admin membership: %w", err))
	}
	if !ok {
		return apperror.ErrUnauthorized()
	}
	return nil
}
