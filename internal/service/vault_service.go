package service

import (
	"context"
	"fmt"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// VaultServiceImpl implements ports.VaultService. The vault is the sole
// custodian of deposited assets. It is bound at construction to one
// registry and keeps honoring it even after the gateway swaps its own
// access controller; every release re-checks the vault-access role against
// that fixed registry.
type VaultServiceImpl struct {
	custodyRepo ports.CustodyRepository
	roleRepo    ports.RoleRepository
	fungible    ports.FungibleTokenClient
	nft         ports.NonFungibleTokenClient
	registryID  uuid.UUID
	address     domain.Address
	log         zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl bound to registryID.
func NewVaultService(
	custodyRepo ports.CustodyRepository,
	roleRepo ports.RoleRepository,
	fungible ports.FungibleTokenClient,
	nft ports.NonFungibleTokenClient,
	registryID uuid.UUID,
	address domain.Address,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		custodyRepo: custodyRepo,
		roleRepo:    roleRepo,
		fungible:    fungible,
		nft:         nft,
		registryID:  registryID,
		address:     address,
		log:         log,
	}
}

// Address returns the vault's custody address.
func (s *VaultServiceImpl) Address() domain.Address {
	return s.address
}

// ReleaseNative pays out native value from custody. It participates in the
// caller's open transaction so the ledger decrement and custody movement
// commit or roll back together.
func (s *VaultServiceImpl) ReleaseNative(ctx context.Context, tx pgx.Tx, caller, to domain.Address, amount int64) error {
	if err := s.requireVaultAccess(ctx, caller); err != nil {
		return err
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	balance, err := s.custodyRepo.NativeBalanceForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock custody balance: %w", err))
	}
	if balance < amount {
		return apperror.ErrInsufficientCustody()
	}

	if err := s.custodyRepo.AddNative(ctx, tx, -amount); err != nil {
		return apperror.InternalError(fmt.Errorf("release native custody: %w", err))
	}

	s.log.Info().
		Str("to", to.String()).
		Int64("amount", amount).
		Msg("native custody released")
	return nil
}

// ReleaseFungible pushes tokens held by the vault to the recipient via the
// external token contract. The contract's refusal surfaces unmodified.
func (s *VaultServiceImpl) ReleaseFungible(ctx context.Context, tx pgx.Tx, caller, token, to domain.Address, amount int64) error {
	if err := s.requireVaultAccess(ctx, caller); err != nil {
		return err
	}
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	if err := s.fungible.Transfer(ctx, token, s.address, to, amount); err != nil {
		return apperror.ErrExternalTransferFailed(err)
	}

	s.log.Info().
		Str("token", token.String()).
		Str("to", to.String()).
		Int64("amount", amount).
		Msg("fungible custody released")
	return nil
}

// ReleaseNonFungible transfers one token unit out of the vault's ownership.
func (s *VaultServiceImpl) ReleaseNonFungible(ctx context.Context, tx pgx.Tx, caller, token, to domain.Address, tokenID int64) error {
	if err := s.requireVaultAccess(ctx, caller); err != nil {
		return err
	}

	if err := s.nft.TransferFrom(ctx, token, s.address, s.address, to, tokenID); err != nil {
		return apperror.ErrExternalTransferFailed(err)
	}

	s.log.Info().
		Str("token", token.String()).
		Str("to", to.String()).
		Int64("token_id", tokenID).
		Msg("non-fungible custody released")
	return nil
}

// ReceiveNative accepts native value pushed by the gateway's deposit flow.
func (s *VaultServiceImpl) ReceiveNative(ctx context.Context, tx pgx.Tx, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.custodyRepo.AddNative(ctx, tx, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("receive native custody: %w", err))
	}
	return nil
}

// NativeCustody returns the total native value held.
func (s *VaultServiceImpl) NativeCustody(ctx context.Context) (int64, error) {
	balance, err := s.custodyRepo.NativeBalance(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get custody balance: %w", err))
	}
	return balance, nil
}

// FungibleCustody returns the vault's balance at the external token
// contract.
func (s *VaultServiceImpl) FungibleCustody(ctx context.Context, token domain.Address) (int64, error) {
	balance, err := s.fungible.BalanceOf(ctx, token, s.address)
	if err != nil {
		return 0, apperror.ErrExternalTransferFailed(err)
	}
	return balance, nil
}

// HoldsNonFungible reports whether the vault owns a token unit.
func (s *VaultServiceImpl) HoldsNonFungible(ctx context.Context, token domain.Address, tokenID int64) (bool, error) {
	owner, err := s.nft.OwnerOf(ctx, token, tokenID)
	if err != nil {
		return false, nil
	}
	return owner == s.address, nil
}

// requireVaultAccess gates every release against the registry fixed at
// construction. Callers reaching the vault directly hit the same check as
// those coming through the gateway.
func (s *VaultServiceImpl) requireVaultAccess(ctx context.Context, caller domain.Address) error {
	ok, err := s.roleRepo.HasRole(ctx, s.registryID, domain.RoleVaultAccess, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check vault access: %w", err))
	}
	if !ok {
		return apperror.ErrUnauthorized()
	}
	return nil
}
