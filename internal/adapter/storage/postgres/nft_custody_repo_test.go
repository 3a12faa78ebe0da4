package postgres

import (
	"context"
	"testing"
	"time"

	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNFTRecord() *domain.NFTCustody {
	return &domain.NFTCustody{
		Token:     testToken,
		TokenID:   7,
		Depositor: testPrincipal,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func nftRow(rec *domain.NFTCustody) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"token", "token_id", "depositor", "created_at"}).
		AddRow(rec.Token, rec.TokenID, rec.Depositor, rec.CreatedAt)
}

func TestNFTCustodyRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)
	rec := newTestNFTRecord()

	mock.ExpectQuery("SELECT .+ FROM nft_custody").
		WithArgs(rec.Token, rec.TokenID).
		WillReturnRows(nftRow(rec))

	result, err := repo.Get(context.Background(), rec.Token, rec.TokenID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec.Depositor, result.Depositor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTCustodyRepo_Get_NoRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM nft_custody").
		WithArgs(testToken, int64(99)).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.Get(context.Background(), testToken, 99)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTCustodyRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)
	rec := newTestNFTRecord()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM nft_custody .+ FOR UPDATE").
		WithArgs(rec.Token, rec.TokenID).
		WillReturnRows(nftRow(rec))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, rec.Token, rec.TokenID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec.Token, result.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTCustodyRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)
	rec := newTestNFTRecord()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO nft_custody").
		WithArgs(rec.Token, rec.TokenID, rec.Depositor, rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTCustodyRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM nft_custody").
		WithArgs(testToken, int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Delete(context.Background(), tx, testToken, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTCustodyRepo_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNFTCustodyRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM nft_custody").
		WithArgs(testToken, int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Delete(context.Background(), tx, testToken, 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
