package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named capability inside one access-control registry.
type Role string

const (
	// RoleSuperAdmin is self-administered and exists from registry
	// construction; it is the default admin of every other role.
	RoleSuperAdmin Role = "SUPER_ADMIN"

	// RoleVaultAccess gates every vault release operation.
	RoleVaultAccess Role = "VAULT_ACCESS"

	// RoleGatewayAccess gates gateway withdrawals, whitelist edits and
	// access-control swaps.
	RoleGatewayAccess Role = "GATEWAY_ACCESS"
)

// Registry is one access-control registry instance. The gateway trusts an
// append-only sequence of these; the vault stays bound to the one it was
// constructed with.
type Registry struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier"`
	CreatedBy  Address   `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// RoleGrant records membership of a principal in a role within a registry.
type RoleGrant struct {
	RegistryID uuid.UUID `json:"registry_id"`
	Role       Role      `json:"role"`
	Principal  Address   `json:"principal"`
	GrantedBy  Address   `json:"granted_by"`
	CreatedAt  time.Time `json:"created_at"`
}
