package ports

import (
	"context"
	"time"

	"custody-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(principalID uuid.UUID, accessKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PrincipalID uuid.UUID
	AccessKey   string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, principalID string, nonce string, ttl time.Duration) (bool, error)
}

// --- Service Ports (Business Logic) ---

// RegistryService is the access-control registry: role membership queries
// and admin-gated mutation.
type RegistryService interface {
	// CreateRegistry bootstraps a fresh registry: its super-admin role is
	// self-administered and granted to the creator.
	CreateRegistry(ctx context.Context, creator domain.Address, identifier string) (*domain.Registry, error)
	GetRegistry(ctx context.Context, id uuid.UUID) (*domain.Registry, error)
	// HasRole is a pure membership query with no side effects.
	HasRole(ctx context.Context, registryID uuid.UUID, role domain.Role, principal domain.Address) (bool, error)
	// Grant and Revoke mutate membership; the caller must hold the role's
	// admin role.
	Grant(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, principal domain.Address) error
	Revoke(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, principal domain.Address) error
	// SetRoleAdmin reassigns which role administers role; the caller must
	// hold the current admin role.
	SetRoleAdmin(ctx context.Context, caller domain.Address, registryID uuid.UUID, role domain.Role, admin domain.Role) error
	AdminRole(ctx context.Context, registryID uuid.UUID, role domain.Role) (domain.Role, error)
}

// VaultService is the sole custodian of deposited assets. Release methods
// participate in the caller's open transaction so ledger decrement and
// custody movement commit or roll back together; every release re-checks the
// vault-access role independently of any gateway-side check.
type VaultService interface {
	ReleaseNative(ctx context.Context, tx pgx.Tx, caller, to domain.Address, amount int64) error
	ReleaseFungible(ctx context.Context, tx pgx.Tx, caller, token, to domain.Address, amount int64) error
	ReleaseNonFungible(ctx context.Context, tx pgx.Tx, caller, token, to domain.Address, tokenID int64) error
	// ReceiveNative accepts native value pushed by the gateway's deposit
	// flow. The vault is otherwise only a transfer target.
	ReceiveNative(ctx context.Context, tx pgx.Tx, amount int64) error
	NativeCustody(ctx context.Context) (int64, error)
	FungibleCustody(ctx context.Context, token domain.Address) (int64, error)
	HoldsNonFungible(ctx context.Context, token domain.Address, tokenID int64) (bool, error)
	Address() domain.Address
}

// GatewayService is the user-facing deposit/withdraw surface with the claim
// ledger, whitelists and the versioned access-control reference.
type GatewayService interface {
	DepositNative(ctx context.Context, req DepositNativeRequest) (*domain.Transfer, error)
	DepositFungible(ctx context.Context, req DepositFungibleRequest) (*domain.Transfer, error)
	DepositNonFungible(ctx context.Context, req DepositNonFungibleRequest) (*domain.Transfer, error)

	WithdrawNative(ctx context.Context, req WithdrawNativeRequest) (*domain.Transfer, error)
	WithdrawFungible(ctx context.Context, req WithdrawFungibleRequest) (*domain.Transfer, error)
	WithdrawNonFungible(ctx context.Context, req WithdrawNonFungibleRequest) (*domain.Transfer, error)

	SetAccessController(ctx context.Context, caller domain.Address, registryID uuid.UUID) (*domain.ControllerVersion, error)
	ControlVersion(ctx context.Context) (uint64, error)
	AccessControllerAt(ctx context.Context, version uint64) (*domain.ControllerVersion, error)

	AddWhitelist(ctx context.Context, caller domain.Address, kind domain.WhitelistKind, token domain.Address) error
	RemoveWhitelist(ctx context.Context, caller domain.Address, kind domain.WhitelistKind, token domain.Address) error
	CountWhitelist(ctx context.Context, kind domain.WhitelistKind) (int64, error)
	WhitelistByIndex(ctx context.Context, kind domain.WhitelistKind, index int64) (domain.Address, error)
	ListWhitelist(ctx context.Context, kind domain.WhitelistKind) ([]domain.WhitelistEntry, error)

	DepositsOf(ctx context.Context, principal domain.Address) (int64, error)
	FungibleDepositsOf(ctx context.Context, token domain.Address, principal domain.Address) (int64, error)
	NonFungibleDepositorOf(ctx context.Context, token domain.Address, tokenID int64) (*domain.NFTCustody, error)
}

// DepositNativeRequest holds validated input for a native deposit.
type DepositNativeRequest struct {
	Principal   domain.Address
	Amount      int64
	ReferenceID string
	ClientIP    string
}

// DepositFungibleRequest holds validated input for a fungible-token deposit.
type DepositFungibleRequest struct {
	Principal   domain.Address
	Token       domain.Address
	Amount      int64
	ReferenceID string
	ClientIP    string
}

// DepositNonFungibleRequest holds validated input for an NFT deposit.
type DepositNonFungibleRequest struct {
	Principal   domain.Address
	Token       domain.Address
	TokenID     int64
	ReferenceID string
	ClientIP    string
}

// WithdrawNativeRequest holds validated input for a native withdrawal.
// Caller must hold the gateway-access role; From is the claim owner.
type WithdrawNativeRequest struct {
	Caller      domain.Address
	From        domain.Address
	To          domain.Address
	Amount      int64
	ReferenceID string
	ClientIP    string
}

// WithdrawFungibleRequest holds validated input for a fungible withdrawal.
type WithdrawFungibleRequest struct {
	Caller      domain.Address
	Token       domain.Address
	From        domain.Address
	To          domain.Address
	Amount      int64
	ReferenceID string
	ClientIP    string
}

// WithdrawNonFungibleRequest holds validated input for an NFT withdrawal.
type WithdrawNonFungibleRequest struct {
	Caller      domain.Address
	Token       domain.Address
	To          domain.Address
	TokenID     int64
	ReferenceID string
	ClientIP    string
}

// AuthService defines principal authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for principal registration.
type RegisterRequest struct {
	Username   string
	Password   string
	WebhookURL *string
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	PrincipalID uuid.UUID
	Address     domain.Address
	AccessKey   string
	SecretKey   string // Plaintext, shown only at registration
}

// ReportingService defines journal/dashboard queries.
type ReportingService interface {
	ListTransfers(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
	GetTransferStats(ctx context.Context, principal domain.Address) (*TransferStats, error)
	// CustodyBalance returns the vault's holding of an amount-based asset.
	CustodyBalance(ctx context.Context, asset domain.AssetClass) (int64, error)
}

// NotifierService delivers webhook notifications.
type NotifierService interface {
	// NotifyPolicyChange announces an access-control swap, carrying the new
	// version number and registry identifier.
	NotifyPolicyChange(ctx context.Context, version *domain.ControllerVersion) error
	// NotifyTransfer announces a settled deposit or withdrawal to the claim
	// owner's webhook URL.
	NotifyTransfer(ctx context.Context, transfer *domain.Transfer) error
}

// AuditService records audit entries (best-effort).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
