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

func TestWhitelistRepo_Contains(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(domain.WhitelistKindFungible, testToken).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Contains(context.Background(), domain.WhitelistKindFungible, testToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_Add(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)
	entry := &domain.WhitelistEntry{
		Kind:      domain.WhitelistKindNonFungible,
		Token:     testToken,
		AddedBy:   testPrincipal,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO whitelists").
		WithArgs(entry.Kind, entry.Token, entry.AddedBy, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Add(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_Remove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)

	mock.ExpectExec("DELETE FROM whitelists").
		WithArgs(domain.WhitelistKindFungible, testToken).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Remove(context.Background(), domain.WhitelistKindFungible, testToken)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(domain.WhitelistKindFungible).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background(), domain.WhitelistKindFungible)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_GetByIndex(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)

	mock.ExpectQuery("SELECT token FROM whitelists .+ ORDER BY position LIMIT 1 OFFSET").
		WithArgs(domain.WhitelistKindFungible, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"token"}).AddRow(testToken))

	token, err := repo.GetByIndex(context.Background(), domain.WhitelistKindFungible, 1)
	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_GetByIndex_OutOfRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)

	mock.ExpectQuery("SELECT token FROM whitelists").
		WithArgs(domain.WhitelistKindFungible, int64(9)).
		WillReturnError(pgx.ErrNoRows)

	token, err := repo.GetByIndex(context.Background(), domain.WhitelistKindFungible, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.ZeroAddress, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhitelistRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWhitelistRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM whitelists .+ ORDER BY position").
		WithArgs(domain.WhitelistKindFungible).
		WillReturnRows(pgxmock.NewRows([]string{"kind", "token", "position", "added_by", "created_at"}).
			AddRow(domain.WhitelistKindFungible, testToken, int64(0), testPrincipal, now).
			AddRow(domain.WhitelistKindFungible, domain.Address("0x00000000000000000000000000000000000000cc"), int64(1), testPrincipal, now))

	entries, err := repo.List(context.Background(), domain.WhitelistKindFungible)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, testToken, entries[0].Token)
	assert.Equal(t, int64(1), entries[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}
