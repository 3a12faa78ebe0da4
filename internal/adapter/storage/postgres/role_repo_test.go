package postgres

import (
	"context"
	"testing"
	"time"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepo_HasRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	registryID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(registryID, domain.RoleGatewayAccess, testPrincipal).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasRole(context.Background(), registryID, domain.RoleGatewayAccess, testPrincipal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Grant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	g := &domain.RoleGrant{
		RegistryID: uuid.New(),
		Role:       domain.RoleVaultAccess,
		Principal:  testPrincipal,
		GrantedBy:  testToken,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO role_grants").
		WithArgs(g.RegistryID, g.Role, g.Principal, g.GrantedBy, g.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Grant(context.Background(), g)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Revoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	registryID := uuid.New()

	mock.ExpectExec("DELETE FROM role_grants").
		WithArgs(registryID, domain.RoleGatewayAccess, testPrincipal).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Revoke(context.Background(), registryID, domain.RoleGatewayAccess, testPrincipal)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_AdminRole_Default(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	registryID := uuid.New()

	mock.ExpectQuery("SELECT admin_role FROM role_admins").
		WithArgs(registryID, domain.RoleGatewayAccess).
		WillReturnError(pgx.ErrNoRows)

	admin, err := repo.AdminRole(context.Background(), registryID, domain.RoleGatewayAccess)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_AdminRole_Explicit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	registryID := uuid.New()

	mock.ExpectQuery("SELECT admin_role FROM role_admins").
		WithArgs(registryID, domain.RoleVaultAccess).
		WillReturnRows(pgxmock.NewRows([]string{"admin_role"}).AddRow(domain.RoleGatewayAccess))

	admin, err := repo.AdminRole(context.Background(), registryID, domain.RoleVaultAccess)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGatewayAccess, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_SetAdminRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	registryID := uuid.New()

	mock.ExpectExec("INSERT INTO role_admins").
		WithArgs(registryID, domain.RoleVaultAccess, domain.RoleSuperAdmin).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SetAdminRole(context.Background(), registryID, domain.RoleVaultAccess, domain.RoleSuperAdmin)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
