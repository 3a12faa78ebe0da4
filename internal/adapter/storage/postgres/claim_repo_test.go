package postgres

import (
	"context"
	"testing"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = domain.Address("0x00000000000000000000000000000000000000aa")
	testPrincipal = domain.Address("0x00000000000000000000000000000000000000bb")
)

func TestClaimRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClaimRepo(mock)

	mock.ExpectQuery("SELECT amount FROM claims").
		WithArgs(domain.AssetKindFungible, testToken, testPrincipal).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(500)))

	amount, err := repo.Get(context.Background(), domain.AssetKindFungible, testToken, testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepo_Get_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClaimRepo(mock)

	mock.ExpectQuery("SELECT amount FROM claims").
		WithArgs(domain.AssetKindNative, domain.ZeroAddress, testPrincipal).
		WillReturnError(pgx.ErrNoRows)

	amount, err := repo.Get(context.Background(), domain.AssetKindNative, domain.ZeroAddress, testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClaimRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount FROM claims WHERE .+ FOR UPDATE").
		WithArgs(domain.AssetKindNative, domain.ZeroAddress, testPrincipal).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(1000)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	amount, err := repo.GetForUpdate(context.Background(), tx, domain.AssetKindNative, domain.ZeroAddress, testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepo_Add(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClaimRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO claims").
		WithArgs(domain.AssetKindFungible, testToken, testPrincipal, int64(-250)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Add(context.Background(), tx, domain.AssetKindFungible, testToken, testPrincipal, -250)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepo_Sum(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClaimRepo(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(domain.AssetKindFungible, testToken).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(4200)))

	total, err := repo.Sum(context.Background(), domain.AssetKindFungible, testToken)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
