package handler

import (
	"strconv"

	"custody-gateway/internal/adapter/http/dto"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"
	"custody-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler exposes the vault's release surface and custody queries
// directly. Release calls carry the authenticated caller's own address, so a
// request that skips the gateway is judged purely by the vault's role check.
type VaultHandler struct {
	vaultSvc ports.VaultService
	db       ports.DBTransactor
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService, db ports.DBTransactor) *VaultHandler {
	return &VaultHandler{vaultSvc: vaultSvc, db: db}
}

// ReleaseNative handles POST /api/v1/vault/releases/native.
func (h *VaultHandler) ReleaseNative(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.VaultReleaseNativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tx, err := h.db.Begin(ctx)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.vaultSvc.ReleaseNative(ctx, tx, caller, to, req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, gin.H{"released": req.Amount, "to": to.String()})
}

// ReleaseFungible handles POST /api/v1/vault/releases/fungible.
func (h *VaultHandler) ReleaseFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.VaultReleaseFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tx, err := h.db.Begin(ctx)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.vaultSvc.ReleaseFungible(ctx, tx, caller, token, to, req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, gin.H{"released": req.Amount, "token": token.String(), "to": to.String()})
}

// ReleaseNonFungible handles POST /api/v1/vault/releases/nonfungible.
func (h *VaultHandler) ReleaseNonFungible(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.VaultReleaseNonFungibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, ok := parseAddress(c, "token", req.Token)
	if !ok {
		return
	}
	to, ok := parseAddress(c, "to", req.To)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tx, err := h.db.Begin(ctx)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.vaultSvc.ReleaseNonFungible(ctx, tx, caller, token, to, req.TokenID); err != nil {
		response.Error(c, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, gin.H{"token": token.String(), "token_id": req.TokenID, "to": to.String()})
}

// GetNativeCustody handles GET /api/v1/vault/custody/native.
func (h *VaultHandler) GetNativeCustody(c *gin.Context) {
	balance, err := h.vaultSvc.NativeCustody(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CustodyBalanceResponse{
		Kind:    string(domain.AssetKindNative),
		Balance: balance,
	})
}

// GetFungibleCustody handles GET /api/v1/vault/custody/fungible/:token.
func (h *VaultHandler) GetFungibleCustody(c *gin.Context) {
	token, ok := parseAddress(c, "token", c.Param("token"))
	if !ok {
		return
	}

	balance, err := h.vaultSvc.FungibleCustody(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CustodyBalanceResponse{
		Kind:    string(domain.AssetKindFungible),
		Token:   token.String(),
		Balance: balance,
	})
}

// GetNonFungibleCustody handles GET /api/v1/vault/custody/nonfungible/:token/:tokenID.
func (h *VaultHandler) GetNonFungibleCustody(c *gin.Context) {
	token, ok := parseAddress(c, "token", c.Param("token"))
	if !ok {
		return
	}

	tokenID, err := strconv.ParseInt(c.Param("tokenID"), 10, 64)
	if err != nil || tokenID < 0 {
		response.Error(c, apperror.Validation("token_id must be a non-negative integer"))
		return
	}

	held, err := h.vaultSvc.HoldsNonFungible(c.Request.Context(), token, tokenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"token":    token.String(),
		"token_id": tokenID,
		"held":     held,
	})
}
