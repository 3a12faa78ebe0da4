package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		var principalID *uuid.UUID
		if pid, exists := c.Get(CtxPrincipalID); exists {
			if id, ok := pid.(uuid.UUID); ok {
				principalID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			PrincipalID:  principalID,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/auth/register" && method == "POST":
		return domain.AuditActionRegister, "principal"
	case path == "/api/v1/auth/login" && method == "POST":
		return domain.AuditActionLogin, "session"
	case strings.HasPrefix(path, "/api/v1/gateway/deposits/") && method == "POST":
		return domain.AuditActionDeposit, "transfer"
	case strings.HasPrefix(path, "/api/v1/gateway/withdrawals/") && method == "POST":
		return domain.AuditActionWithdraw, "transfer"
	case path == "/api/v1/gateway/controller" && method == "PUT":
		return domain.AuditActionSetController, "controller"
	case path == "/api/v1/gateway/whitelist" && (method == "POST" || method == "DELETE"):
		return domain.AuditActionWhitelist, "whitelist"
	case strings.HasPrefix(path, "/api/v1/vault/releases/") && method == "POST":
		return domain.AuditActionVaultRelease, "vault"
	case path == "/api/v1/registries" && method == "POST":
		return domain.AuditActionCreateRegistry, "registry"
	case strings.HasPrefix(path, "/api/v1/registries/") && strings.HasSuffix(path, "/grants") && method == "POST":
		return domain.AuditActionGrantRole, "role"
	case strings.HasPrefix(path, "/api/v1/registries/") && strings.HasSuffix(path, "/grants") && method == "DELETE":
		return domain.AuditActionRevokeRole, "role"
	case strings.HasPrefix(path, "/api/v1/registries/") && strings.HasSuffix(path, "/admin-role") && method == "PUT":
		return domain.AuditActionSetRoleAdmin, "role"
	}
	return "", ""
}
