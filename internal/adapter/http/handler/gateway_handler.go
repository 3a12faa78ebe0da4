package handler

import (
	"strconv"

	"custody-gateway/internal/adapter/http/dto"
	"custody-gateway/internal/adapter/http/middleware"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"
	"custody-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GatewayHandler handles deposit, withdrawal, whitelist and access-control
// endpoints.
type GatewayHandler struct {
	gatewaySvc ports.GatewayService
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(gatewaySvc ports.GatewayService) *GatewayHandler {
	return &GatewayHandler{gatewaySvc: gatewaySvc}
}

// DepositNative handles POST /api/v1/gateway/deposits/native.
func (h *GatewayHandler) DepositNative(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.DepositNativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.gatewaySvc.DepositNative(c.Request.Context(), ports.DepositNativeRequest{
		Principal:   caller,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// DepositFungible handles POST /api/v1/gateway/deposits/fungible.
func (h *GatewayHandler) DepositFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.DepositFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}

	result, err := h.gatewaySvc.DepositFungible(c.Request.Context(), ports.DepositFungibleRequest{
		Principal:   caller,
		Token:       token,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// DepositNonFungible handles POST /api/v1/gateway/deposits/nonfungible.
func (h *GatewayHandler) DepositNonFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.DepositNonFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}

	result, err := h.gatewaySvc.DepositNonFungible(c.Request.Context(), ports.DepositNonFungibleRequest{
		Principal:   caller,
		Token:       token,
		TokenID:     req.TokenID,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// WithdrawNative handles POST /api/v1/gateway/withdrawals/native.
func (h *GatewayHandler) WithdrawNative(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.WithdrawNativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	from, ok := parseAddress(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	result, err := h.gatewaySvc.WithdrawNative(c.Request.Context(), ports.WithdrawNativeRequest{
		Caller:      caller,
		From:        from,
		To:          to,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// WithdrawFungible handles POST /api/v1/gateway/withdrawals/fungible.
func (h *GatewayHandler) WithdrawFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.WithdrawFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}
	from, ok := parseAddress(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	result, err := h.gatewaySvc.WithdrawFungible(c.Request.Context(), ports.WithdrawFungibleRequest{
		Caller:      caller,
		Token:       token,
		From:        from,
		To:          to,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// WithdrawNonFungible handles POST /api/v1/gateway/withdrawals/nonfungible.
func (h *GatewayHandler) WithdrawNonFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.WithdrawNonFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	result, err := h.gatewaySvc.WithdrawNonFungible(c.Request.Context(), ports.WithdrawNonFungibleRequest{
		Caller:      caller,
		Token:       token,
		To:          to,
		TokenID:     req.TokenID,
		ReferenceID: req.ReferenceID,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// SetController handles PUT /api/v1/gateway/controller.
func (h *GatewayHandler) SetController(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.SetControllerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	registryID, err := uuid.Parse(req.RegistryID)
	if err != nil {
		response.Error(c, apperror.Validation("registry_id must be a UUID"))
		return
	}

	version, err := h.gatewaySvc.SetAccessController(c.Request.Context(), caller, registryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toControllerResponse(version))
}

// GetControlVersion handles GET /api/v1/gateway/controller.
func (h *GatewayHandler) GetControlVersion(c *gin.Context) {
	version, err := h.gatewaySvc.ControlVersion(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"version": version})
}

// GetControllerAt handles GET /api/v1/gateway/controller/:version.
func (h *GatewayHandler) GetControllerAt(c *gin.Context) {
	version, err := strconv.ParseUint(c.Param("version"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("version must be a non-negative integer"))
		return
	}

	entry, err := h.gatewaySvc.AccessControllerAt(c.Request.Context(), version)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toControllerResponse(entry))
}

// AddWhitelist handles POST /api/v1/gateway/whitelist.
func (h *GatewayHandler) AddWhitelist(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}

	if err := h.gatewaySvc.AddWhitelist(c.Request.Context(), caller, domain.WhitelistKind(req.Kind), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"kind": req.Kind, "token": token.String()})
}

// RemoveWhitelist handles DELETE /api/v1/gateway/whitelist.
func (h *GatewayHandler) RemoveWhitelist(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}

	if err := h.gatewaySvc.RemoveWhitelist(c.Request.Context(), caller, domain.WhitelistKind(req.Kind), token); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "whitelist entry removed"})
}

// ListWhitelist handles GET /api/v1/gateway/whitelist.
func (h *GatewayHandler) ListWhitelist(c *gin.Context) {
	kind, ok := whitelistKind(c)
	if !ok {
		return
	}

	entries, err := h.gatewaySvc.ListWhitelist(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WhitelistEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.WhitelistEntryResponse{
			Kind:     string(e.Kind),
			Token:    e.Token.String(),
			Position: e.Position,
			AddedBy:  e.AddedBy.String(),
		})
	}

	response.OK(c, gin.H{"items": items})
}

// CountWhitelist handles GET /api/v1/gateway/whitelist/count.
func (h *GatewayHandler) CountWhitelist(c *gin.Context) {
	kind, ok := whitelistKind(c)
	if !ok {
		return
	}

	count, err := h.gatewaySvc.CountWhitelist(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"count": count})
}

// WhitelistByIndex handles GET /api/v1/gateway/whitelist/entry/:index.
func (h *GatewayHandler) WhitelistByIndex(c *gin.Context) {
	kind, ok := whitelistKind(c)
	if !ok {
		return
	}

	index, err := strconv.ParseInt(c.Param("index"), 10, 64)
	if err != nil || index < 0 {
		response.Error(c, apperror.Validation("index must be a non-negative integer"))
		return
	}

	token, err := h.gatewaySvc.WhitelistByIndex(c.Request.Context(), kind, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"token": token.String()})
}

// GetNativeClaim handles GET /api/v1/gateway/claims/native/:principal.
func (h *GatewayHandler) GetNativeClaim(c *gin.Context) {
	principal, ok := parseAddress(c, "principal", c.Param("principal"))
	if !ok {
		return
	}

	amount, err := h.gatewaySvc.DepositsOf(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		Principal: principal.String(),
		Kind:      string(domain.AssetKindNative),
		Amount:    amount,
	})
}

// GetFungibleClaim handles GET /api/v1/gateway/claims/fungible/:token/:principal.
func (h *GatewayHandler) GetFungibleClaim(c *gin.Context) {
	token, ok := parseAddress(c, "token", c.Param("token"))
	if !ok {
		return
	}
	principal, ok := parseAddress(c, "principal", c.Param("principal"))
	if !ok {
		return
	}

	amount, err := h.gatewaySvc.FungibleDepositsOf(c.Request.Context(), token, principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		Principal: principal.String(),
		Kind:      string(domain.AssetKindFungible),
		Token:     token.String(),
		Amount:    amount,
	})
}

// GetNonFungibleDepositor handles GET /api/v1/gateway/custodian/:token/:tokenID.
func (h *GatewayHandler) GetNonFungibleDepositor(c *gin.Context) {
	token, ok := parseAddress(c, "token", c.Param("token"))
	if !ok {
		return
	}

	tokenID, err := strconv.ParseInt(c.Param("tokenID"), 10, 64)
	if err != nil || tokenID < 0 {
		response.Error(c, apperror.Validation("token_id must be a non-negative integer"))
		return
	}

	record, err := h.gatewaySvc.NonFungibleDepositorOf(c.Request.Context(), token, tokenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"token":     record.Token.String(),
		"token_id":  record.TokenID,
		"depositor": record.Depositor.String(),
	})
}

// --- Shared handler helpers ---

// callerAddress fetches the authenticated principal's address from context.
func callerAddress(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(middleware.CtxAddress)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	addr, ok := v.(domain.Address)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return addr, true
}

// parseAddress normalizes a request-supplied address.
func parseAddress(c *gin.Context, field, raw string) (domain.Address, bool) {
	addr, err := domain.NormalizeAddress(raw)
	if err != nil {
		response.Error(c, apperror.Validation(field+" must be a 0x-prefixed hex address"))
		return "", false
	}
	return addr, true
}

// whitelistKind reads the ?kind= query parameter.
func whitelistKind(c *gin.Context) (domain.WhitelistKind, bool) {
	switch c.Query("kind") {
	case string(domain.WhitelistKindFungible):
		return domain.WhitelistKindFungible, true
	case string(domain.WhitelistKindNonFungible):
		return domain.WhitelistKindNonFungible, true
	default:
		response.Error(c, apperror.Validation("kind must be FUNGIBLE or NON_FUNGIBLE"))
		return "", false
	}
}

// toTransferResponse converts domain.Transfer to DTO.
func toTransferResponse(t *domain.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:          t.ID.String(),
		ReferenceID: t.ReferenceID,
		Direction:   string(t.Direction),
		Kind:        string(t.Kind),
		Token:       t.Token.String(),
		TokenID:     t.TokenID,
		Principal:   t.Principal.String(),
		Recipient:   t.Recipient.String(),
		Amount:      t.Amount,
		InitiatedBy: t.InitiatedBy.String(),
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// toControllerResponse converts domain.ControllerVersion to DTO.
func toControllerResponse(v *domain.ControllerVersion) dto.ControllerResponse {
	return dto.ControllerResponse{
		Version:            v.Version,
		RegistryID:         v.RegistryID.String(),
		RegistryIdentifier: v.RegistryIdentifier,
		SetBy:              v.SetBy.String(),
		CreatedAt:          v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
