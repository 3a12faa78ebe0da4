package ports

import (
	"context"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RegistryRepository defines persistence for access-control registry
// instances.
type RegistryRepository interface {
	Create(ctx context.Context, registry *domain.Registry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registry, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Registry, error)
}

// RoleRepository defines persistence for role membership and role-admin
// pointers inside a registry. Both the gateway gate and the vault gate run
// against this same abstraction.
type RoleRepository interface {
	HasRole(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) (bool, error)
	Grant(ctx context.Context, grant *domain.RoleGrant) error
	Revoke(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) error
	// AdminRole returns the role administering `role`; RoleSuperAdmin when
	// no explicit admin has been set.
	AdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role) (domain.Role, error)
	SetAdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role, admin domain.Role) error
}

// ClaimRepository is the amount-based deposit ledger for native and fungible
// assets. Token is the zero value for native claims.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type ClaimRepository interface {
	// Get returns the claim amount; 0 when no row exists.
	Get(ctx context.Context, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address) (int64, error)
	// Add upserts the claim row, adding delta (which may be negative).
	Add(ctx context.Context, tx pgx.Tx, kind domain.AssetKind, token domain.Address, principal domain.Address, delta int64) error
	// Sum totals all claims against one asset, for invariant checks.
	Sum(ctx context.Context, kind domain.AssetKind, token domain.Address) (int64, error)
}

// NFTCustodyRepository is the record-based ledger for non-fungible tokens.
type NFTCustodyRepository interface {
	Get(ctx context.Context, token domain.Address, tokenID int64) (*domain.NFTCustody, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) (*domain.NFTCustody, error)
	Create(ctx context.Context, tx pgx.Tx, record *domain.NFTCustody) error
	Delete(ctx context.Context, tx pgx.Tx, token domain.Address, tokenID int64) error
}

// WhitelistRepository persists the two ordered deposit whitelists.
type WhitelistRepository interface {
	Contains(ctx context.Context, kind domain.WhitelistKind, token domain.Address) (bool, error)
	Add(ctx context.Context, entry *domain.WhitelistEntry) error
	Remove(ctx context.Context, kind domain.WhitelistKind, token domain.Address) error
	Count(ctx context.Context, kind domain.WhitelistKind) (int64, error)
	// GetByIndex returns the i-th token in insertion order.
	GetByIndex(ctx context.Context, kind domain.WhitelistKind, index int64) (domain.Address, error)
	List(ctx context.Context, kind domain.WhitelistKind) ([]domain.WhitelistEntry, error)
}

// ControllerRepository persists the append-only access-control version
// sequence.
type ControllerRepository interface {
	// Append adds a new version pointing at registryID and returns it.
	Append(ctx context.Context, tx pgx.Tx, registryID uuid.UUID, setBy domain.Address) (*domain.ControllerVersion, error)
	Current(ctx context.Context) (*domain.ControllerVersion, error)
	GetByVersion(ctx context.Context, version uint64) (*domain.ControllerVersion, error)
}

// CustodyRepository tracks the vault's native-currency holdings. Fungible
// and non-fungible custody live with the external token contracts, keyed by
// the vault address.
type CustodyRepository interface {
	NativeBalance(ctx context.Context) (int64, error)
	NativeBalanceForUpdate(ctx context.Context, tx pgx.Tx) (int64, error)
	// AddNative upserts the vault balance row, adding delta (may be negative).
	AddNative(ctx context.Context, tx pgx.Tx, delta int64) error
}

// TransferRepository persists the immutable transfer journal.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	List(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
	GetStats(ctx context.Context, principal domain.Address) (*TransferStats, error)
}

// TransferListParams holds filter + pagination for listing transfers.
type TransferListParams struct {
	Principal domain.Address
	Direction *domain.TransferDirection
	Kind      *domain.AssetKind
	From      *int64 // Unix timestamp
	To        *int64 // Unix timestamp
	Page      int
	PageSize  int
}

// TransferStats holds aggregated journal statistics for one principal.
type TransferStats struct {
	TotalTransfers  int64
	Deposits        int64
	Withdrawals     int64
	NativeDeposited int64
	NativeWithdrawn int64
}

// PrincipalRepository defines persistence operations for principals.
type PrincipalRepository interface {
	Create(ctx context.Context, principal *domain.Principal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Principal, error)
	GetByUsername(ctx context.Context, username string) (*domain.Principal, error)
	GetByAddress(ctx context.Context, address domain.Address) (*domain.Principal, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
