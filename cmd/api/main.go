package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"custody-gateway/config"
	httpHandler "custody-gateway/internal/adapter/http/handler"
	pgStorage "custody-gateway/internal/adapter/storage/postgres"
	redisStorage "custody-gateway/internal/adapter/storage/redis"
	tokenClient "custody-gateway/internal/adapter/token"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/internal/service"
	"custody-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Custody Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	principalRepo := pgStorage.NewPrincipalRepo(pool)
	claimRepo := pgStorage.NewClaimRepo(pool)
	nftRepo := pgStorage.NewNFTCustodyRepo(pool)
	whitelistRepo := pgStorage.NewWhitelistRepo(pool)
	controllerRepo := pgStorage.NewControllerRepo(pool)
	registryRepo := pgStorage.NewRegistryRepo(pool)
	roleRepo := pgStorage.NewRoleRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	custodyRepo := pgStorage.NewCustodyRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize token ledger clients
	fungibleClient := tokenClient.NewFungibleClient(pool)
	nftClient := tokenClient.NewNonFungibleClient(pool)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Resolve the fixed custody identities
	deployerAddr, err := domain.NormalizeAddress(cfg.Custody.DeployerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid deployer address")
	}
	vaultAddr, err := domain.NormalizeAddress(cfg.Custody.VaultAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid vault address")
	}
	gatewayAddr, err := domain.NormalizeAddress(cfg.Custody.GatewayAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gateway address")
	}

	// Seed the version-0 registry and its initial grants on first start
	registryID, err := bootstrapCustody(ctx, bootstrapDeps{
		registryRepo:   registryRepo,
		roleRepo:       roleRepo,
		controllerRepo: controllerRepo,
		transactor:     transactor,
		identifier:     cfg.Custody.RegistryIdentifier,
		deployer:       deployerAddr,
		gateway:        gatewayAddr,
		log:            log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap access control")
	}

	// Initialize business services
	authSvc := service.NewAuthService(principalRepo, hashSvc, encSvc, tokenSvc)
	registrySvc := service.NewRegistryService(registryRepo, roleRepo, log)
	vaultSvc := service.NewVaultService(custodyRepo, roleRepo, fungibleClient, nftClient, registryID, vaultAddr, log)
	notifierSvc := service.NewNotifierService(principalRepo, encSvc, sigSvc, &http.Client{Timeout: 10 * time.Second}, cfg.Notifier, log)
	gatewaySvc := service.NewGatewayService(
		claimRepo,
		nftRepo,
		whitelistRepo,
		controllerRepo,
		registryRepo,
		roleRepo,
		transferRepo,
		idempotencyRepo,
		idempotencyCache,
		vaultSvc,
		fungibleClient,
		nftClient,
		notifierSvc,
		transactor,
		gatewayAddr,
		log,
	)
	reportingSvc := service.NewReportingService(transferRepo, vaultSvc)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		VaultSvc:       vaultSvc,
		GatewaySvc:     gatewaySvc,
		ReportingSvc:   reportingSvc,
		PrincipalRepo:  principalRepo,
		DB:             transactor,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

type bootstrapDeps struct {
	registryRepo   ports.RegistryRepository
	roleRepo       ports.RoleRepository
	controllerRepo ports.ControllerRepository
	transactor     ports.DBTransactor
	identifier     string
	deployer       domain.Address
	gateway        domain.Address
	log            zerolog.Logger
}

// bootstrapCustody ensures the version-0 registry exists and carries the
// initial grants: the deployer holds every role, and the gateway identity
// holds vault access so it can instruct the vault. Idempotent across
// restarts; an existing registry is reused untouched.
func bootstrapCustody(ctx context.Context, deps bootstrapDeps) (uuid.UUID, error) {
	existing, err := deps.registryRepo.GetByIdentifier(ctx, deps.identifier)
	if err != nil {
		return uuid.Nil, fmt.Errorf("look up registry %q: %w", deps.identifier, err)
	}
	if existing != nil {
		deps.log.Info().
			Str("registry_id", existing.ID.String()).
			Str("identifier", existing.Identifier).
			Msg("Access registry already bootstrapped")
		return existing.ID, nil
	}

	reg := &domain.Registry{
		ID:         uuid.New(),
		Identifier: deps.identifier,
		CreatedBy:  deps.deployer,
		CreatedAt:  time.Now().UTC(),
	}
	if err := deps.registryRepo.Create(ctx, reg); err != nil {
		return uuid.Nil, fmt.Errorf("create registry: %w", err)
	}

	now := time.Now().UTC()
	grants := []domain.RoleGrant{
		{RegistryID: reg.ID, Role: domain.RoleSuperAdmin, Principal: deps.deployer, GrantedBy: deps.deployer, CreatedAt: now},
		{RegistryID: reg.ID, Role: domain.RoleVaultAccess, Principal: deps.deployer, GrantedBy: deps.deployer, CreatedAt: now},
		{RegistryID: reg.ID, Role: domain.RoleVaultAccess, Principal: deps.gateway, GrantedBy: deps.deployer, CreatedAt: now},
		{RegistryID: reg.ID, Role: domain.RoleGatewayAccess, Principal: deps.deployer, GrantedBy: deps.deployer, CreatedAt: now},
	}
	for i := range grants {
		if err := deps.roleRepo.Grant(ctx, &grants[i]); err != nil {
			return uuid.Nil, fmt.Errorf("grant %s to %s: %w", grants[i].Role, grants[i].Principal, err)
		}
	}

	tx, err := deps.transactor.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin bootstrap tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cv, err := deps.controllerRepo.Append(ctx, tx, reg.ID, deps.deployer)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed controller version: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit bootstrap tx: %w", err)
	}

	deps.log.Info().
		Str("registry_id", reg.ID.String()).
		Str("identifier", reg.Identifier).
		Uint64("version", cv.Version).
		Msg("Access registry bootstrapped")
	return reg.ID, nil
}
