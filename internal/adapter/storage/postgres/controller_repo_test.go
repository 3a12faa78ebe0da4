package postgres

import (
	"context"
	"testing"
	"time"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewControllerRepo(mock)
	registryID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO access_control_versions").
		WithArgs(registryID, testPrincipal).
		WillReturnRows(pgxmock.NewRows([]string{"version", "created_at"}).AddRow(uint64(3), now))
	mock.ExpectQuery("SELECT identifier FROM registries").
		WithArgs(registryID).
		WillReturnRows(pgxmock.NewRows([]string{"identifier"}).AddRow("policy-v3"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	cv, err := repo.Append(context.Background(), tx, registryID, testPrincipal)
	require.NoError(t, err)
	require.NotNil(t, cv)
	assert.Equal(t, uint64(3), cv.Version)
	assert.Equal(t, registryID, cv.RegistryID)
	assert.Equal(t, "policy-v3", cv.RegistryIdentifier)
	assert.Equal(t, testPrincipal, cv.SetBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestControllerRepo_Current(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewControllerRepo(mock)
	registryID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM access_control_versions .+ ORDER BY v.version DESC LIMIT 1").
		WillReturnRows(pgxmock.NewRows([]string{"version", "registry_id", "identifier", "set_by", "created_at"}).
			AddRow(uint64(1), registryID, "bootstrap", testPrincipal, now))

	cv, err := repo.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cv)
	assert.Equal(t, uint64(1), cv.Version)
	assert.Equal(t, "bootstrap", cv.RegistryIdentifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestControllerRepo_GetByVersion_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewControllerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM access_control_versions").
		WithArgs(uint64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"version", "registry_id", "identifier", "set_by", "created_at"}))

	cv, err := repo.GetByVersion(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, cv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestControllerRepo_GetByVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewControllerRepo(mock)
	registryID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM access_control_versions").
		WithArgs(uint64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"version", "registry_id", "identifier", "set_by", "created_at"}).
			AddRow(uint64(0), registryID, "bootstrap", domain.Address("0x00000000000000000000000000000000000000cc"), now))

	cv, err := repo.GetByVersion(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, cv)
	assert.Equal(t, uint64(0), cv.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
