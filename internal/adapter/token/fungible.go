package token

import (
	"context"
	"errors"
	"fmt"

	"custody-gateway/internal/adapter/storage/postgres"
	"custody-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Errors surfaced by the wrapped fungible-token ledger. They propagate
// verbatim to callers so a failed pull reads like the token's own refusal.
var (
	ErrExceedsBalance        = errors.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// FungibleClient implements ports.FungibleTokenClient against the wrapped
// token ledger tables. Each call runs in its own transaction; the token
// ledger settles independently of the caller's transaction, like an
// external contract would.
type FungibleClient struct {
	pool postgres.Pool
}

// NewFungibleClient creates a new FungibleClient.
func NewFungibleClient(pool postgres.Pool) *FungibleClient {
	return &FungibleClient{pool: pool}
}

// BalanceOf returns a holder's balance; 0 when no row exists.
func (c *FungibleClient) BalanceOf(ctx context.Context, token, holder domain.Address) (int64, error) {
	query := `SELECT balance FROM token_balances WHERE token = $1 AND holder = $2`

	var balance int64
	err := c.pool.QueryRow(ctx, query, token, holder).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get token balance: %w", err)
	}
	return balance, nil
}

// Allowance returns how much spender may pull from owner; 0 when no row
// exists.
func (c *FungibleClient) Allowance(ctx context.Context, token, owner, spender domain.Address) (int64, error) {
	query := `SELECT amount FROM token_allowances WHERE token = $1 AND owner = $2 AND spender = $3`

	var amount int64
	err := c.pool.QueryRow(ctx, query, token, owner, spender).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get token allowance: %w", err)
	}
	return amount, nil
}

// TransferFrom pulls amount from owner to recipient on spender's authority,
// consuming allowance. Fails with the token's own error when the allowance
// or balance is short.
func (c *FungibleClient) TransferFrom(ctx context.Context, token, owner, spender, recipient domain.Address, amount int64) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin token transfer: %w", err)
	}
	defer tx.Rollback(ctx)

	if spender != owner {
		var allowance int64
		err = tx.QueryRow(ctx,
			`SELECT amount FROM token_allowances WHERE token = $1 AND owner = $2 AND spender = $3 FOR UPDATE`,
			token, owner, spender).Scan(&allowance)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lock token allowance: %w", err)
		}
		if allowance < amount {
			return ErrInsufficientAllowance
		}
		_, err = tx.Exec(ctx,
			`UPDATE token_allowances SET amount = amount - $4 WHERE token = $1 AND owner = $2 AND spender = $3`,
			token, owner, spender, amount)
		if err != nil {
			return fmt.Errorf("consume token allowance: %w", err)
		}
	}

	if err := c.move(ctx, tx, token, owner, recipient, amount); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Transfer moves amount from holder to recipient on the holder's own
// authority.
func (c *FungibleClient) Transfer(ctx context.Context, token, holder, recipient domain.Address, amount int64) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin token transfer: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := c.move(ctx, tx, token, holder, recipient, amount); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (c *FungibleClient) move(ctx context.Context, tx pgx.Tx, token, from, to domain.Address, amount int64) error {
	var balance int64
	err := tx.QueryRow(ctx,
		`SELECT balance FROM token_balances WHERE token = $1 AND holder = $2 FOR UPDATE`,
		token, from).Scan(&balance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lock token balance: %w", err)
	}
	if balance < amount {
		return ErrExceedsBalance
	}

	_, err = tx.Exec(ctx,
		`UPDATE token_balances SET balance = balance - $3 WHERE token = $1 AND holder = $2`,
		token, from, amount)
	if err != nil {
		return fmt.Errorf("debit token balance: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO token_balances (token, holder, balance) VALUES ($1, $2, $3)
		ON CONFLICT (token, holder) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance`,
		token, to, amount)
	if err != nil {
		return fmt.Errorf("credit token balance: %w", err)
	}
	return nil
}
