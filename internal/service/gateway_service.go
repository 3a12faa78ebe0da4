package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// GatewayServiceImpl implements ports.GatewayService: the user-facing
// deposit/withdraw surface over the claim ledger, the deposit whitelists
// and the versioned access-control reference. Withdrawal gates always run
// against the current controller version; the vault re-checks its own
// fixed registry on every release.
type GatewayServiceImpl struct {
	claimRepo      ports.ClaimRepository
	nftRepo        ports.NFTCustodyRepository
	whitelistRepo  ports.WhitelistRepository
	controllerRepo ports.ControllerRepository
	registryRepo   ports.RegistryRepository
	roleRepo       ports.RoleRepository
	transferRepo   ports.TransferRepository
	idempRepo      ports.IdempotencyRepository
	idempCache     ports.IdempotencyCache
	vault          ports.VaultService
	fungible       ports.FungibleTokenClient
	nft            ports.NonFungibleTokenClient
	notifier       ports.NotifierService
	transactor     ports.DBTransactor
	address        domain.Address
	log            zerolog.Logger
}

// NewGatewayService creates a new GatewayServiceImpl. address is the
// gateway's own principal address, used when it invokes vault releases.
func NewGatewayService(
	claimRepo ports.ClaimRepository,
	nftRepo ports.NFTCustodyRepository,
	whitelistRepo ports.WhitelistRepository,
	controllerRepo ports.ControllerRepository,
	registryRepo ports.RegistryRepository,
	roleRepo ports.RoleRepository,
	transferRepo ports.TransferRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	vault ports.VaultService,
	fungible ports.FungibleTokenClient,
	nft ports.NonFungibleTokenClient,
	notifier ports.NotifierService,
	transactor ports.DBTransactor,
	address domain.Address,
	log zerolog.Logger,
) *GatewayServiceImpl {
	return &GatewayServiceImpl{
		claimRepo:      claimRepo,
		nftRepo:        nftRepo,
		whitelistRepo:  whitelistRepo,
		controllerRepo: controllerRepo,
		registryRepo:   registryRepo,
		roleRepo:       roleRepo,
		transferRepo:   transferRepo,
		idempRepo:      idempRepo,
		idempCache:     idempCache,
		vault:          vault,
		fungible:       fungible,
		nft:            nft,
		notifier:       notifier,
		transactor:     transactor,
		address:        address,
		log:            log,
	}
}

// ---- Deposits ----

// DepositNative accepts native value into custody. The depositor's claim
// and the vault's custody balance move together in one transaction.
func (s *GatewayServiceImpl) DepositNative(ctx context.Context, req ports.DepositNativeRequest) (*domain.Transfer, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	idempKey := domain.BuildIdempotencyKey(req.Principal, domain.TransferDirectionDeposit, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.claimRepo.Add(ctx, dbTx, domain.AssetKindNative, domain.ZeroAddress, req.Principal, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit claim: %w", err))
	}
	if err := s.vault.ReceiveNative(ctx, dbTx, req.Amount); err != nil {
		return nil, err
	}

	transfer := s.newTransfer(domain.TransferDirectionDeposit, domain.AssetKindNative, domain.ZeroAddress, nil,
		req.Principal, s.vault.Address(), req.Amount, req.Principal, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("principal", req.Principal.String()).
		Int64("amount", req.Amount).
		Msg("native deposit settled")
	return transfer, nil
}

// DepositFungible pulls whitelisted tokens from the depositor into the
// vault via the token's allowance mechanism. The claim credit commits only
// if the pull succeeds; the token's own refusal surfaces unmodified.
func (s *GatewayServiceImpl) DepositFungible(ctx context.Context, req ports.DepositFungibleRequest) (*domain.Transfer, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireWhitelisted(ctx, domain.WhitelistKindFungible, req.Token); err != nil {
		return nil, err
	}

	idempKey := domain.BuildIdempotencyKey(req.Principal, domain.TransferDirectionDeposit, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.claimRepo.Add(ctx, dbTx, domain.AssetKindFungible, req.Token, req.Principal, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit claim: %w", err))
	}
	if err := s.fungible.TransferFrom(ctx, req.Token, req.Principal, s.vault.Address(), s.vault.Address(), req.Amount); err != nil {
		return nil, apperror.ErrExternalTransferFailed(err)
	}

	transfer := s.newTransfer(domain.TransferDirectionDeposit, domain.AssetKindFungible, req.Token, nil,
		req.Principal, s.vault.Address(), req.Amount, req.Principal, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("token", req.Token.String()).
		Int64("amount", req.Amount).
		Msg("fungible deposit settled")
	return transfer, nil
}

// DepositNonFungible records custody of one token unit and pulls its
// ownership into the vault.
func (s *GatewayServiceImpl) DepositNonFungible(ctx context.Context, req ports.DepositNonFungibleRequest) (*domain.Transfer, error) {
	if err := s.requireWhitelisted(ctx, domain.WhitelistKindNonFungible, req.Token); err != nil {
		return nil, err
	}

	idempKey := domain.BuildIdempotencyKey(req.Principal, domain.TransferDirectionDeposit, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := s.nftRepo.GetForUpdate(ctx, dbTx, req.Token, req.TokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check custody record: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateDeposit()
	}

	now := time.Now().UTC()
	record := &domain.NFTCustody{
		Token:     req.Token,
		TokenID:   req.TokenID,
		Depositor: req.Principal,
		CreatedAt: now,
	}
	if err := s.nftRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create custody record: %w", err))
	}
	if err := s.nft.TransferFrom(ctx, req.Token, s.vault.Address(), req.Principal, s.vault.Address(), req.TokenID); err != nil {
		return nil, apperror.ErrExternalTransferFailed(err)
	}

	tokenID := req.TokenID
	transfer := s.newTransfer(domain.TransferDirectionDeposit, domain.AssetKindNonFungible, req.Token, &tokenID,
		req.Principal, s.vault.Address(), 1, req.Principal, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("token", req.Token.String()).
		Int64("token_id", req.TokenID).
		Msg("non-fungible deposit settled")
	return transfer, nil
}

// ---- Withdrawals ----

// WithdrawNative releases native value back out of custody. The caller
// must hold gateway access under the current controller version; the
// payout fails ExceedsClaim when it exceeds the from-principal's claim.
func (s *GatewayServiceImpl) WithdrawNative(ctx context.Context, req ports.WithdrawNativeRequest) (*domain.Transfer, error) {
	if err := s.requireGatewayAccess(ctx, req.Caller); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	idempKey := domain.BuildIdempotencyKey(req.Caller, domain.TransferDirectionWithdraw, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	claim, err := s.claimRepo.GetForUpdate(ctx, dbTx, domain.AssetKindNative, domain.ZeroAddress, req.From)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock claim: %w", err))
	}
	if claim < req.Amount {
		return nil, apperror.ErrExceedsClaim()
	}

	if err := s.claimRepo.Add(ctx, dbTx, domain.AssetKindNative, domain.ZeroAddress, req.From, -req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit claim: %w", err))
	}
	if err := s.vault.ReleaseNative(ctx, dbTx, s.address, req.To, req.Amount); err != nil {
		return nil, err
	}

	transfer := s.newTransfer(domain.TransferDirectionWithdraw, domain.AssetKindNative, domain.ZeroAddress, nil,
		req.From, req.To, req.Amount, req.Caller, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("from", req.From.String()).
		Str("to", req.To.String()).
		Int64("amount", req.Amount).
		Msg("native withdrawal settled")
	return transfer, nil
}

// WithdrawFungible releases tokens from the vault against the
// from-principal's claim on that token.
func (s *GatewayServiceImpl) WithdrawFungible(ctx context.Context, req ports.WithdrawFungibleRequest) (*domain.Transfer, error) {
	if err := s.requireGatewayAccess(ctx, req.Caller); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	idempKey := domain.BuildIdempotencyKey(req.Caller, domain.TransferDirectionWithdraw, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	claim, err := s.claimRepo.GetForUpdate(ctx, dbTx, domain.AssetKindFungible, req.Token, req.From)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock claim: %w", err))
	}
	if claim < req.Amount {
		return nil, apperror.ErrExceedsClaim()
	}

	if err := s.claimRepo.Add(ctx, dbTx, domain.AssetKindFungible, req.Token, req.From, -req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit claim: %w", err))
	}
	if err := s.vault.ReleaseFungible(ctx, dbTx, s.address, req.Token, req.To, req.Amount); err != nil {
		return nil, err
	}

	transfer := s.newTransfer(domain.TransferDirectionWithdraw, domain.AssetKindFungible, req.Token, nil,
		req.From, req.To, req.Amount, req.Caller, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("token", req.Token.String()).
		Int64("amount", req.Amount).
		Msg("fungible withdrawal settled")
	return transfer, nil
}

// WithdrawNonFungible releases one token unit. The custody record must
// exist; it is deleted and ownership leaves the vault in the same
// transaction.
func (s *GatewayServiceImpl) WithdrawNonFungible(ctx context.Context, req ports.WithdrawNonFungibleRequest) (*domain.Transfer, error) {
	if err := s.requireGatewayAccess(ctx, req.Caller); err != nil {
		return nil, err
	}

	idempKey := domain.BuildIdempotencyKey(req.Caller, domain.TransferDirectionWithdraw, req.ReferenceID)
	if cached, err := s.checkIdempotency(ctx, idempKey); err != nil || cached != nil {
		return cached, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	record, err := s.nftRepo.GetForUpdate(ctx, dbTx, req.Token, req.TokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock custody record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotOwnerRecord()
	}

	if err := s.nftRepo.Delete(ctx, dbTx, req.Token, req.TokenID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("delete custody record: %w", err))
	}
	if err := s.vault.ReleaseNonFungible(ctx, dbTx, s.address, req.Token, req.To, req.TokenID); err != nil {
		return nil, err
	}

	tokenID := req.TokenID
	transfer := s.newTransfer(domain.TransferDirectionWithdraw, domain.AssetKindNonFungible, req.Token, &tokenID,
		record.Depositor, req.To, 1, req.Caller, req.ReferenceID)

	if err := s.settle(ctx, dbTx, transfer, idempKey); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("token", req.Token.String()).
		Int64("token_id", req.TokenID).
		Msg("non-fungible withdrawal settled")
	return transfer, nil
}

// ---- Access controller ----

// SetAccessController appends a new registry binding to the version
// sequence. Prior versions stay queryable; the caller must hold gateway
// access under the version being replaced.
func (s *GatewayServiceImpl) SetAccessController(ctx context.Context, caller domain.Address, registryID uuid.UUID) (*domain.ControllerVersion, error) {
	if err := s.requireGatewayAccess(ctx, caller); err != nil {
		return nil, err
	}

	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return nil, apperror.ErrNotFound("registry")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	version, err := s.controllerRepo.Append(ctx, dbTx, registryID, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append controller version: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.notifier.NotifyPolicyChange(ctx, version); err != nil {
		s.log.Warn().Err(err).Uint64("version", version.Version).Msg("policy change notification failed")
	}

	s.log.Info().
		Uint64("version", version.Version).
		Str("registry_id", registryID.String()).
		Str("set_by", caller.String()).
		Msg("access controller updated")
	return version, nil
}

// ControlVersion returns the current (latest) controller version number.
func (s *GatewayServiceImpl) ControlVersion(ctx context.Context) (uint64, error) {
	current, err := s.controllerRepo.Current(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get current controller: %w", err))
	}
	if current == nil {
		return 0, apperror.ErrNotFound("controller version")
	}
	return current.Version, nil
}

// AccessControllerAt returns the registry binding at a historical version.
func (s *GatewayServiceImpl) AccessControllerAt(ctx context.Context, version uint64) (*domain.ControllerVersion, error) {
	cv, err := s.controllerRepo.GetByVersion(ctx, version)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get controller version: %w", err))
	}
	if cv == nil {
		return nil, apperror.ErrNotFound("controller version")
	}
	return cv, nil
}

// ---- Whitelists ----

// AddWhitelist adds a token to a deposit whitelist. Gated by gateway
// access; re-adding is a no-op.
func (s *GatewayServiceImpl) AddWhitelist(ctx context.Context, caller domain.Address, kind domain.WhitelistKind, token domain.Address) error {
	if err := s.requireGatewayAccess(ctx, caller); err != nil {
		return err
	}
	entry := &domain.WhitelistEntry{
		Kind:      kind,
		Token:     token,
		AddedBy:   caller,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.whitelistRepo.Add(ctx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("add whitelist: %w", err))
	}
	s.log.Info().
		Str("kind", string(kind)).
		Str("token", token.String()).
		Msg("token whitelisted")
	return nil
}

// RemoveWhitelist removes a token from a deposit whitelist. Removing an
// absent token is a no-op; retained entries keep their order.
func (s *GatewayServiceImpl) RemoveWhitelist(ctx context.Context, caller domain.Address, kind domain.WhitelistKind, token domain.Address) error {
	if err := s.requireGatewayAccess(ctx, caller); err != nil {
		return err
	}
	if err := s.whitelistRepo.Remove(ctx, kind, token); err != nil {
		return apperror.InternalError(fmt.Errorf("remove whitelist: %w", err))
	}
	s.log.Info().
		Str("kind", string(kind)).
		Str("token", token.String()).
		Msg("token removed from whitelist")
	return nil
}

// CountWhitelist returns the number of whitelisted tokens.
func (s *GatewayServiceImpl) CountWhitelist(ctx context.Context, kind domain.WhitelistKind) (int64, error) {
	n, err := s.whitelistRepo.Count(ctx, kind)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("count whitelist: %w", err))
	}
	return n, nil
}

// WhitelistByIndex returns the i-th whitelisted token in insertion order.
func (s *GatewayServiceImpl) WhitelistByIndex(ctx context.Context, kind domain.WhitelistKind, index int64) (domain.Address, error) {
	token, err := s.whitelistRepo.GetByIndex(ctx, kind, index)
	if err != nil {
		return domain.ZeroAddress, apperror.InternalError(fmt.Errorf("whitelist by index: %w", err))
	}
	if token.IsZero() {
		return domain.ZeroAddress, apperror.ErrNotFound("whitelist entry")
	}
	return token, nil
}

// ListWhitelist returns all whitelisted tokens in insertion order.
func (s *GatewayServiceImpl) ListWhitelist(ctx context.Context, kind domain.WhitelistKind) ([]domain.WhitelistEntry, error) {
	entries, err := s.whitelistRepo.List(ctx, kind)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list whitelist: %w", err))
	}
	return entries, nil
}

// ---- Ledger queries ----

// DepositsOf returns a principal's native claim.
func (s *GatewayServiceImpl) DepositsOf(ctx context.Context, principal domain.Address) (int64, error) {
	claim, err := s.claimRepo.Get(ctx, domain.AssetKindNative, domain.ZeroAddress, principal)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get native claim: %w", err))
	}
	return claim, nil
}

// FungibleDepositsOf returns a principal's claim against one token.
func (s *GatewayServiceImpl) FungibleDepositsOf(ctx context.Context, token domain.Address, principal domain.Address) (int64, error) {
	claim, err := s.claimRepo.Get(ctx, domain.AssetKindFungible, token, principal)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get fungible claim: %w", err))
	}
	return claim, nil
}

// NonFungibleDepositorOf returns the custody record for a token unit.
func (s *GatewayServiceImpl) NonFungibleDepositorOf(ctx context.Context, token domain.Address, tokenID int64) (*domain.NFTCustody, error) {
	record, err := s.nftRepo.Get(ctx, token, tokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get custody record: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotOwnerRecord()
	}
	return record, nil
}

// ---- Internals ----

// requireGatewayAccess checks the caller against the registry the current
// controller version points to. A freshly swapped registry takes effect
// here immediately.
func (s *GatewayServiceImpl) requireGatewayAccess(ctx context.Context, caller domain.Address) error {
	current, err := s.controllerRepo.Current(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get current controller: %w", err))
	}
	if current == nil {
		return apperror.ErrUnauthorized()
	}
	ok, err := s.roleRepo.HasRole(ctx, current.RegistryID, domain.RoleGatewayAccess, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check gateway access: %w", err))
	}
	if !ok {
		return apperror.ErrUnauthorized()
	}
	return nil
}

func (s *GatewayServiceImpl) requireWhitelisted(ctx context.Context, kind domain.WhitelistKind, token domain.Address) error {
	ok, err := s.whitelistRepo.Contains(ctx, kind, token)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check whitelist: %w", err))
	}
	if !ok {
		return apperror.ErrNotWhitelisted()
	}
	return nil
}

// checkIdempotency runs the two-layer replay check: Redis fast path, then
// the durable log. A hit returns the recorded transfer.
func (s *GatewayServiceImpl) checkIdempotency(ctx context.Context, key string) (*domain.Transfer, error) {
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedTransfer(cached)
	}

	idempLog, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return s.unmarshalCachedTransfer(idempLog.ResponseJSON)
	}
	return nil, nil
}

func (s *GatewayServiceImpl) newTransfer(direction domain.TransferDirection, kind domain.AssetKind,
	token domain.Address, tokenID *int64, principal, recipient domain.Address, amount int64,
	initiatedBy domain.Address, referenceID string) *domain.Transfer {
	return &domain.Transfer{
		ID:          uuid.New(),
		ReferenceID: referenceID,
		Direction:   direction,
		Kind:        kind,
		Token:       token,
		TokenID:     tokenID,
		Principal:   principal,
		Recipient:   recipient,
		Amount:      amount,
		InitiatedBy: initiatedBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// settle writes the journal entry and idempotency log, commits, then runs
// the best-effort post-commit steps (Redis cache, webhook).
func (s *GatewayServiceImpl) settle(ctx context.Context, dbTx pgx.Tx, transfer *domain.Transfer, idempKey string) error {
	if err := s.transferRepo.Create(ctx, dbTx, transfer); err != nil {
		return apperror.InternalError(fmt.Errorf("create transfer: %w", err))
	}

	respJSON, err := json.Marshal(transfer)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	idempEntry := &domain.IdempotencyLog{
		Key:          idempKey,
		TransferID:   transfer.ID,
		ResponseJSON: respJSON,
		CreatedAt:    transfer.CreatedAt,
	}
	if err := s.idempRepo.Create(ctx, dbTx, idempEntry); err != nil {
		return apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}
	if err := s.notifier.NotifyTransfer(ctx, transfer); err != nil {
		s.log.Warn().Err(err).Str("transfer_id", transfer.ID.String()).Msg("transfer notification failed")
	}
	return nil
}

func (s *GatewayServiceImpl) unmarshalCachedTransfer(data []byte) (*domain.Transfer, error) {
	transfer := &domain.Transfer{}
	if err := json.Unmarshal(data, transfer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached transfer: %w", err))
	}
	return transfer, nil
}
