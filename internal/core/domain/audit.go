package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionDeposit        AuditAction = "DEPOSIT"
	AuditActionWithdraw       AuditAction = "WITHDRAW"
	AuditActionCreateRegistry AuditAction = "CREATE_REGISTRY"
	AuditActionGrantRole      AuditAction = "GRANT_ROLE"
	AuditActionRevokeRole     AuditAction = "REVOKE_ROLE"
	AuditActionSetRoleAdmin   AuditAction = "SET_ROLE_ADMIN"
	AuditActionSetController  AuditAction = "SET_CONTROLLER"
	AuditActionWhitelist      AuditAction = "WHITELIST"
	AuditActionVaultRelease   AuditAction = "VAULT_RELEASE"
	AuditActionRegister       AuditAction = "REGISTER"
	AuditActionLogin          AuditAction = "LOGIN"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	PrincipalID  *uuid.UUID  `json:"principal_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
