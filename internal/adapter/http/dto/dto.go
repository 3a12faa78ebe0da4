package dto

// RegisterRequest is the request body for principal registration.
type RegisterRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	Password   string  `json:"password" binding:"required,min=8,max=128"`
	WebhookURL *string `json:"webhook_url,omitempty" binding:"omitempty,safe_url"`
}

// LoginRequest is the request body for principal login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	PrincipalID string `json:"principal_id"`
	Address     string `json:"address"`
	AccessKey   string `json:"access_key"`
	SecretKey   string `json:"secret_key"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// DepositNativeRequest is the request body for a native deposit.
type DepositNativeRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// DepositFungibleRequest is the request body for a fungible-token deposit.
type DepositFungibleRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	Token       string `json:"token" binding:"required,address"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// DepositNonFungibleRequest is the request body for an NFT deposit.
type DepositNonFungibleRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	Token       string `json:"token" binding:"required,address"`
	TokenID     int64  `json:"token_id" binding:"gte=0"`
}

// WithdrawNativeRequest is the request body for a native withdrawal.
type WithdrawNativeRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	From        string `json:"from" binding:"required,address"`
	To          string `json:"to" binding:"required,address"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawFungibleRequest is the request body for a fungible withdrawal.
type WithdrawFungibleRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	Token       string `json:"token" binding:"required,address"`
	From        string `json:"from" binding:"required,address"`
	To          string `json:"to" binding:"required,address"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawNonFungibleRequest is the request body for an NFT withdrawal.
type WithdrawNonFungibleRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	Token       string `json:"token" binding:"required,address"`
	To          string `json:"to" binding:"required,address"`
	TokenID     int64  `json:"token_id" binding:"gte=0"`
}

// TransferResponse is the response body for a settled transfer.
type TransferResponse struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	Direction   string `json:"direction"`
	Kind        string `json:"kind"`
	Token       string `json:"token,omitempty"`
	TokenID     *int64 `json:"token_id,omitempty"`
	Principal   string `json:"principal"`
	Recipient   string `json:"recipient"`
	Amount      int64  `json:"amount"`
	InitiatedBy string `json:"initiated_by"`
	CreatedAt   string `json:"created_at"`
}

// SetControllerRequest is the request body for an access-control swap.
type SetControllerRequest struct {
	RegistryID string `json:"registry_id" binding:"required,uuid"`
}

// ControllerResponse is the response body for one controller version.
type ControllerResponse struct {
	Version            uint64 `json:"version"`
	RegistryID         string `json:"registry_id"`
	RegistryIdentifier string `json:"registry_identifier"`
	SetBy              string `json:"set_by"`
	CreatedAt          string `json:"created_at"`
}

// WhitelistRequest is the request body for whitelist mutation.
type WhitelistRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=FUNGIBLE NON_FUNGIBLE"`
	Token string `json:"token" binding:"required,address"`
}

// WhitelistEntryResponse is one whitelist entry in enumeration results.
type WhitelistEntryResponse struct {
	Kind     string `json:"kind"`
	Token    string `json:"token"`
	Position int64  `json:"position"`
	AddedBy  string `json:"added_by"`
}

// CreateRegistryRequest is the request body for registry creation.
type CreateRegistryRequest struct {
	Identifier string `json:"identifier" binding:"required,min=1,max=100,safe_id"`
}

// RegistryResponse is the response body for registry queries.
type RegistryResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
}

// RoleGrantRequest is the request body for role grant/revoke.
type RoleGrantRequest struct {
	Role      string `json:"role" binding:"required,min=1,max=64"`
	Principal string `json:"principal" binding:"required,address"`
}

// SetRoleAdminRequest is the request body for reassigning a role's admin.
type SetRoleAdminRequest struct {
	Role      string `json:"role" binding:"required,min=1,max=64"`
	AdminRole string `json:"admin_role" binding:"required,min=1,max=64"`
}

// VaultReleaseNativeRequest is the request body for a direct native release.
type VaultReleaseNativeRequest struct {
	To     string `json:"to" binding:"required,address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// VaultReleaseFungibleRequest is the request body for a direct fungible
// release.
type VaultReleaseFungibleRequest struct {
	Token  string `json:"token" binding:"required,address"`
	To     string `json:"to" binding:"required,address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// VaultReleaseNonFungibleRequest is the request body for a direct NFT
// release.
type VaultReleaseNonFungibleRequest struct {
	Token   string `json:"token" binding:"required,address"`
	To      string `json:"to" binding:"required,address"`
	TokenID int64  `json:"token_id" binding:"gte=0"`
}

// ClaimResponse is the response for claim-ledger queries.
type ClaimResponse struct {
	Principal string `json:"principal"`
	Kind      string `json:"kind"`
	Token     string `json:"token,omitempty"`
	Amount    int64  `json:"amount"`
}

// CustodyBalanceResponse is the response for vault custody queries.
type CustodyBalanceResponse struct {
	Kind    string `json:"kind"`
	Token   string `json:"token,omitempty"`
	Balance int64  `json:"balance"`
}

// TransferStatsResponse is the response for journal statistics.
type TransferStatsResponse struct {
	TotalTransfers  int64 `json:"total_transfers"`
	Deposits        int64 `json:"deposits"`
	Withdrawals     int64 `json:"withdrawals"`
	NativeDeposited int64 `json:"native_deposited"`
	NativeWithdrawn int64 `json:"native_withdrawn"`
}

// TransferListResponse wraps a paginated transfer list.
type TransferListResponse struct {
	Items      []TransferResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
