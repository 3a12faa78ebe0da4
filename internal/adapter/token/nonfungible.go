package token

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/adapter/storage/postgres"
	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Errors surfaced by the wrapped non-fungible-token ledger.
var (
	ErrTokenNotExist    = errors.New("query for nonexistent token")
	ErrIncorrectOwner   = errors.New("transfer from incorrect owner")
	ErrCallerNotAllowed = errors.New("caller is not token owner or approved")
)

// NonFungibleClient implements ports.NonFungibleTokenClient against the
// wrapped token ledger. Ownership lives in nft_tokens; a transfer clears
// any outstanding approval.
type NonFungibleClient struct {
	pool postgres.Pool
}

// NewNonFungibleClient creates a new NonFungibleClient.
func NewNonFungibleClient(pool postgres.Pool) *NonFungibleClient {
	return &NonFungibleClient{pool: pool}
}

// OwnerOf returns the current owner of a token unit.
func (c *NonFungibleClient) OwnerOf(ctx context.Context, token domain.Address, tokenID int64) (domain.Address, error) {
	query := `SELECT owner FROM nft_tokens WHERE token = $1 AND token_id = $2`

	var owner domain.Address
	err := c.pool.QueryRow(ctx, query, token, tokenID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ZeroAddress, ErrTokenNotExist
		}
		return domain.ZeroAddress, fmt.Errorf("get token owner: %w", err)
	}
	return owner, nil
}

// TransferFrom moves one token unit from owner to recipient. The caller
// must be the owner or hold a per-token approval.
func (c *NonFungibleClient) TransferFrom(ctx context.Context, token, caller, owner, recipient domain.Address, tokenID int64) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin token transfer: %w", err)
	}
	defer tx.Rollback(ctx)

	var currentOwner domain.Address
	var approved *domain.Address
	err = tx.QueryRow(ctx,
		`SELECT owner, approved FROM nft_tokens WHERE token = $1 AND token_id = $2 FOR UPDATE`,
		token, tokenID).Scan(&currentOwner, &approved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTokenNotExist
		}
		return fmt.Errorf("lock token owner: %w", err)
	}

	if currentOwner != owner {
		return ErrIncorrectOwner
	}
	if caller != currentOwner && (approved == nil || *approved != caller) {
		return ErrCallerNotAllowed
	}

	_, err = tx.Exec(ctx,
		`UPDATE nft_tokens SET owner = $3, approved = NULL WHERE token = $1 AND token_id = $2`,
		token, tokenID, recipient)
	if err != nil {
		return fmt.Errorf("update token owner: %w", err)
	}
	return tx.Commit(ctx)
}
