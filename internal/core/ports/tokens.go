package ports

import (
	"context"

	"custody-gateway/internal/core/domain"
)

// FungibleTokenClient is the boundary to an external fungible token
// contract: balance query, allowance-based pull transfer and push transfer.
// Implementations report their own failures (balance, allowance) as plain
// errors; callers surface them as ExternalTransferFailed without
// reinterpreting the message.
type FungibleTokenClient interface {
	BalanceOf(ctx context.Context, token, holder domain.Address) (int64, error)
	Allowance(ctx context.Context, token, owner, spender domain.Address) (int64, error)
	// TransferFrom pulls amount from owner to recipient, spending the
	// allowance owner granted to spender.
	TransferFrom(ctx context.Context, token, owner, spender, recipient domain.Address, amount int64) error
	// Transfer pushes amount from the holder's own balance.
	Transfer(ctx context.Context, token, holder, recipient domain.Address, amount int64) error
}

// NonFungibleTokenClient is the boundary to an external non-fungible token
// contract: ownership query and approval-based ownership transfer.
type NonFungibleTokenClient interface {
	OwnerOf(ctx context.Context, token domain.Address, tokenID int64) (domain.Address, error)
	// TransferFrom moves tokenID from its current owner to recipient; the
	// caller must be the owner or hold the token's approval.
	TransferFrom(ctx context.Context, token, caller, owner, recipient domain.Address, tokenID int64) error
}
