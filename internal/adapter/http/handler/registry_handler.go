package handler

import (
	"custody-gateway/internal/adapter/http/dto"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"
	"custody-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistryHandler handles access-control registry endpoints.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// CreateRegistry handles POST /api/v1/registries.
func (h *RegistryHandler) CreateRegistry(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.CreateRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	registry, err := h.registrySvc.CreateRegistry(c.Request.Context(), caller, req.Identifier)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRegistryResponse(registry))
}

// GetRegistry handles GET /api/v1/registries/:id.
func (h *RegistryHandler) GetRegistry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	registry, err := h.registrySvc.GetRegistry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRegistryResponse(registry))
}

// HasRole handles GET /api/v1/registries/:id/roles/:role/members/:principal.
func (h *RegistryHandler) HasRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	principal, ok := parseAddress(c, "principal", c.Param("principal"))
	if !ok {
		return
	}

	held, err := h.registrySvc.HasRole(c.Request.Context(), id, domain.Role(c.Param("role")), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"registry_id": id.String(),
		"role":        c.Param("role"),
		"principal":   principal.String(),
		"held":        held,
	})
}

// AdminRole handles GET /api/v1/registries/:id/roles/:role/admin.
func (h *RegistryHandler) AdminRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	admin, err := h.registrySvc.AdminRole(c.Request.Context(), id, domain.Role(c.Param("role")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"registry_id": id.String(),
		"role":        c.Param("role"),
		"admin_role":  string(admin),
	})
}

// Grant handles POST /api/v1/registries/:id/grants.
func (h *RegistryHandler) Grant(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	req, ok := h.bindRoleGrant(c)
	if !ok {
		return
	}

	if err := h.registrySvc.Grant(c.Request.Context(), caller, req.registryID, req.role, req.principal); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"registry_id": req.registryID.String(),
		"role":        string(req.role),
		"principal":   req.principal.String(),
	})
}

// Revoke handles DELETE /api/v1/registries/:id/grants.
func (h *RegistryHandler) Revoke(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	req, ok := h.bindRoleGrant(c)
	if !ok {
		return
	}

	if err := h.registrySvc.Revoke(c.Request.Context(), caller, req.registryID, req.role, req.principal); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "role revoked"})
}

// SetRoleAdmin handles PUT /api/v1/registries/:id/admin-role.
func (h *RegistryHandler) SetRoleAdmin(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	registryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	var req dto.SetRoleAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.registrySvc.SetRoleAdmin(c.Request.Context(), caller, registryID, domain.Role(req.Role), domain.Role(req.AdminRole)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "role admin updated"})
}

type roleGrantInput struct {
	registryID uuid.UUID
	role       domain.Role
	principal  domain.Address
}

func (h *RegistryHandler) bindRoleGrant(c *gin.Context) (roleGrantInput, bool) {
	registryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return roleGrantInput{}, false
	}

	var req dto.RoleGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return roleGrantInput{}, false
	}
	dto.SanitizeStruct(&req)

	principal, ok := parseAddress(c, "principal", req.Principal)
	if !ok {
		return roleGrantInput{}, false
	}

	return roleGrantInput{
		registryID: registryID,
		role:       domain.Role(req.Role),
		principal:  principal,
	}, true
}

func toRegistryResponse(r *domain.Registry) dto.RegistryResponse {
	return dto.RegistryResponse{
		ID:         r.ID.String(),
		Identifier: r.Identifier,
		CreatedBy:  r.CreatedBy.String(),
		CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
