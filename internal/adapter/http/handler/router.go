package handler

import (
	"custody-gateway/internal/adapter/http/middleware"
	redisStore "custody-gateway/internal/adapter/storage/redis"
	"custody-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RegistryService
	VaultSvc       ports.VaultService
	GatewaySvc     ports.GatewayService
	ReportingSvc   ports.ReportingService
	PrincipalRepo  ports.PrincipalRepository
	DB             ports.DBTransactor
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (asset mutation + admin) ---
	hmacAuth := middleware.HMACAuth(deps.PrincipalRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	gatewayHandler := NewGatewayHandler(deps.GatewaySvc)
	vaultHandler := NewVaultHandler(deps.VaultSvc, deps.DB)
	registryHandler := NewRegistryHandler(deps.RegistrySvc)

	deposits := v1.Group("/gateway/deposits", hmacAuth)
	{
		deposits.POST("/native", rl("deposits"), gatewayHandler.DepositNative)
		deposits.POST("/fungible", rl("deposits"), gatewayHandler.DepositFungible)
		deposits.POST("/nonfungible", rl("deposits"), gatewayHandler.DepositNonFungible)
	}

	withdrawals := v1.Group("/gateway/withdrawals", hmacAuth)
	{
		withdrawals.POST("/native", rl("withdrawals"), gatewayHandler.WithdrawNative)
		withdrawals.POST("/fungible", rl("withdrawals"), gatewayHandler.WithdrawFungible)
		withdrawals.POST("/nonfungible", rl("withdrawals"), gatewayHandler.WithdrawNonFungible)
	}

	// Access-control swap is gated in the service by the current controller;
	// the transport only authenticates the caller.
	v1.PUT("/gateway/controller", hmacAuth, rl("admin"), gatewayHandler.SetController)

	whitelist := v1.Group("/gateway/whitelist")
	{
		whitelist.POST("", hmacAuth, rl("admin"), gatewayHandler.AddWhitelist)
		whitelist.DELETE("", hmacAuth, rl("admin"), gatewayHandler.RemoveWhitelist)

		// Enumeration is ungated
		whitelist.GET("", gatewayHandler.ListWhitelist)
		whitelist.GET("/count", gatewayHandler.CountWhitelist)
		whitelist.GET("/entry/:index", gatewayHandler.WhitelistByIndex)
	}

	// Ungated ledger queries
	v1.GET("/gateway/controller", gatewayHandler.GetControlVersion)
	v1.GET("/gateway/controller/:version", gatewayHandler.GetControllerAt)
	v1.GET("/gateway/claims/native/:principal", gatewayHandler.GetNativeClaim)
	v1.GET("/gateway/claims/fungible/:token/:principal", gatewayHandler.GetFungibleClaim)
	v1.GET("/gateway/custodian/:token/:tokenID", gatewayHandler.GetNonFungibleDepositor)

	// Direct vault surface: releases hit the vault's own role check, so a
	// caller skipping the gateway gets the same unauthorized outcome.
	releases := v1.Group("/vault/releases", hmacAuth)
	{
		releases.POST("/native", rl("withdrawals"), vaultHandler.ReleaseNative)
		releases.POST("/fungible", rl("withdrawals"), vaultHandler.ReleaseFungible)
		releases.POST("/nonfungible", rl("withdrawals"), vaultHandler.ReleaseNonFungible)
	}

	custody := v1.Group("/vault/custody")
	{
		custody.GET("/native", vaultHandler.GetNativeCustody)
		custody.GET("/fungible/:token", vaultHandler.GetFungibleCustody)
		custody.GET("/nonfungible/:token/:tokenID", vaultHandler.GetNonFungibleCustody)
	}

	// Registry administration
	registries := v1.Group("/registries")
	{
		registries.POST("", hmacAuth, rl("admin"), registryHandler.CreateRegistry)
		registries.POST("/:id/grants", hmacAuth, rl("admin"), registryHandler.Grant)
		registries.DELETE("/:id/grants", hmacAuth, rl("admin"), registryHandler.Revoke)
		registries.PUT("/:id/admin-role", hmacAuth, rl("admin"), registryHandler.SetRoleAdmin)

		registries.GET("/:id", registryHandler.GetRegistry)
		registries.GET("/:id/roles/:role/admin", registryHandler.AdminRole)
		registries.GET("/:id/roles/:role/members/:principal", registryHandler.HasRole)
	}

	// --- JWT-authenticated routes (reporting) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.PrincipalRepo, deps.Logger)
	reportingHandler := NewReportingHandler(deps.ReportingSvc)

	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.GET("", rl("reporting"), reportingHandler.ListTransfers)
		transfers.GET("/stats", rl("reporting"), reportingHandler.GetStats)
	}

	return r
}
