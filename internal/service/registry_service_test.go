package service

import (
	"context"
	"testing"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registryTestDeps struct {
	svc          *RegistryServiceImpl
	registryRepo *mocks.MockRegistryRepository
	roleRepo     *mocks.MockRoleRepository
	ctrl         *gomock.Controller
}

func setupRegistryService(t *testing.T) *registryTestDeps {
	ctrl := gomock.NewController(t)
	d := &registryTestDeps{
		registryRepo: mocks.NewMockRegistryRepository(ctrl),
		roleRepo:     mocks.NewMockRoleRepository(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewRegistryService(d.registryRepo, d.roleRepo, zerolog.Nop())
	return d
}

func (d *registryTestDeps) expectAdminGate(ctx context.Context, registryID uuid.UUID, role domain.Role, caller domain.Address, isAdmin bool) {
	d.roleRepo.EXPECT().AdminRole(ctx, registryID, role).Return(domain.RoleSuperAdmin, nil)
	d.roleRepo.EXPECT().HasRole(ctx, registryID, domain.RoleSuperAdmin, caller).Return(isAdmin, nil)
}

func TestRegistryService_CreateRegistry_Success(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.registryRepo.EXPECT().GetByIdentifier(ctx, "main-acl").Return(nil, nil)
	d.registryRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.roleRepo.EXPECT().Grant(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, grant *domain.RoleGrant) error {
			assert.Equal(t, domain.RoleSuperAdmin, grant.Role)
			assert.Equal(t, operatorAddr, grant.Principal)
			assert.Equal(t, operatorAddr, grant.GrantedBy)
			return nil
		})

	registry, err := d.svc.CreateRegistry(ctx, operatorAddr, "main-acl")
	require.NoError(t, err)
	require.NotNil(t, registry)
	assert.Equal(t, "main-acl", registry.Identifier)
	assert.Equal(t, operatorAddr, registry.CreatedBy)
}

func TestRegistryService_CreateRegistry_DuplicateIdentifier(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.registryRepo.EXPECT().GetByIdentifier(ctx, "main-acl").Return(&domain.Registry{
		ID:         uuid.New(),
		Identifier: "main-acl",
	}, nil)

	registry, err := d.svc.CreateRegistry(ctx, operatorAddr, "main-acl")
	assert.Nil(t, registry)
	assertAppError(t, err, "CUS_006")
}

func TestRegistryService_GetRegistry_NotFound(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.registryRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	registry, err := d.svc.GetRegistry(ctx, id)
	assert.Nil(t, registry)
	assertAppError(t, err, "CUS_008")
}

func TestRegistryService_Grant_Success(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()

	d.expectAdminGate(ctx, registryID, domain.RoleGatewayAccess, operatorAddr, true)
	d.roleRepo.EXPECT().Grant(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, grant *domain.RoleGrant) error {
			assert.Equal(t, registryID, grant.RegistryID)
			assert.Equal(t, domain.RoleGatewayAccess, grant.Role)
			assert.Equal(t, depositorAddr, grant.Principal)
			return nil
		})

	err := d.svc.Grant(ctx, operatorAddr, registryID, domain.RoleGatewayAccess, depositorAddr)
	require.NoError(t, err)
}

func TestRegistryService_Grant_CallerNotAdmin(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()

	d.expectAdminGate(ctx, registryID, domain.RoleGatewayAccess, depositorAddr, false)

	err := d.svc.Grant(ctx, depositorAddr, registryID, domain.RoleGatewayAccess, recipientAddr)
	assertAppError(t, err, "ACL_001")
}

func TestRegistryService_Revoke_Success(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()

	d.expectAdminGate(ctx, registryID, domain.RoleVaultAccess, operatorAddr, true)
	d.roleRepo.EXPECT().Revoke(ctx, registryID, domain.RoleVaultAccess, depositorAddr).Return(nil)

	err := d.svc.Revoke(ctx, operatorAddr, registryID, domain.RoleVaultAccess, depositorAddr)
	require.NoError(t, err)
}

func TestRegistryService_SetRoleAdmin_GateRunsAgainstCurrentAdmin(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()

	// GATEWAY_ACCESS is currently administered by a custom role; the
	// caller holds that role, not SUPER_ADMIN.
	custodian := domain.Role("CUSTODIAN_ADMIN")
	d.roleRepo.EXPECT().AdminRole(ctx, registryID, domain.RoleGatewayAccess).Return(custodian, nil)
	d.roleRepo.EXPECT().HasRole(ctx, registryID, custodian, operatorAddr).Return(true, nil)
	d.roleRepo.EXPECT().SetAdminRole(ctx, registryID, domain.RoleGatewayAccess, domain.RoleSuperAdmin).Return(nil)

	err := d.svc.SetRoleAdmin(ctx, operatorAddr, registryID, domain.RoleGatewayAccess, domain.RoleSuperAdmin)
	require.NoError(t, err)
}

func TestRegistryService_HasRole(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()
	d.roleRepo.EXPECT().HasRole(ctx, registryID, domain.RoleGatewayAccess, depositorAddr).Return(true, nil)

	ok, err := d.svc.HasRole(ctx, registryID, domain.RoleGatewayAccess, depositorAddr)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistryService_AdminRole(t *testing.T) {
	d := setupRegistryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	registryID := uuid.New()
	d.roleRepo.EXPECT().AdminRole(ctx, registryID, domain.RoleVaultAccess).Return(domain.RoleSuperAdmin, nil)

	admin, err := d.svc.AdminRole(ctx, registryID, domain.RoleVaultAccess)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, admin)
}
