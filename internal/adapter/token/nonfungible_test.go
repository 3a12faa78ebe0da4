package token

import (
	"context"
	"testing"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonFungibleClient_OwnerOf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	client := NewNonFungibleClient(mock)

	mock.ExpectQuery("SELECT owner FROM nft_tokens").
		WithArgs(wrappedToken, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"owner"}).AddRow(holderAddr))

	owner, err := client.OwnerOf(context.Background(), wrappedToken, 7)
	require.NoError(t, err)
	assert.Equal(t, holderAddr, owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonFungibleClient_OwnerOf_NotExist(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	client := NewNonFungibleClient(mock)

	mock.ExpectQuery("SELECT owner FROM nft_tokens").
		WithArgs(wrappedToken, int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err = client.OwnerOf(context.Background(), wrappedToken, 99)
	assert.ErrorIs(t, err, ErrTokenNotExist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonFungibleClient_TransferFrom_ByApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	client := NewNonFungibleClient(mock)
	approved := vaultAddr

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT owner, approved FROM nft_tokens .+ FOR UPDATE").
		WithArgs(wrappedToken, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "approved"}).AddRow(holderAddr, &approved))
	mock.ExpectExec("UPDATE nft_tokens SET owner").
		WithArgs(wrappedToken, int64(7), vaultAddr).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err = client.TransferFrom(context.Background(), wrappedToken, vaultAddr, holderAddr, vaultAddr, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonFungibleClient_TransferFrom_IncorrectOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	client := NewNonFungibleClient(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT owner, approved FROM nft_tokens .+ FOR UPDATE").
		WithArgs(wrappedToken, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "approved"}).AddRow(vaultAddr, (*domain.Address)(nil)))
	mock.ExpectRollback()

	err = client.TransferFrom(context.Background(), wrappedToken, vaultAddr, holderAddr, vaultAddr, 7)
	assert.ErrorIs(t, err, ErrIncorrectOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonFungibleClient_TransferFrom_NotApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	client := NewNonFungibleClient(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT owner, approved FROM nft_tokens .+ FOR UPDATE").
		WithArgs(wrappedToken, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "approved"}).AddRow(holderAddr, (*domain.Address)(nil)))
	mock.ExpectRollback()

	err = client.TransferFrom(context.Background(), wrappedToken, vaultAddr, holderAddr, vaultAddr, 7)
	assert.ErrorIs(t, err, ErrCallerNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
