package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	principalRepo ports.PrincipalRepository
	hashSvc       ports.HashService
	encSvc        ports.EncryptionService
	tokenSvc      ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	principalRepo ports.PrincipalRepository,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		principalRepo: principalRepo,
		hashSvc:       hashSvc,
		encSvc:        encSvc,
		tokenSvc:      tokenSvc,
	}
}

// Register creates a new principal account with a freshly minted ledger
// address. Returns the access_key and secret_key (plaintext shown only
// once).
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	// Check username uniqueness
	existing, err := s.principalRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	// Generate key pair
	accessKey, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}

	secretKey, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	// Mint a ledger address for the principal
	addrHex, err := generateRandomHex(20)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate address: %w", err))
	}
	address, err := domain.NormalizeAddress("0x" + addrHex)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("normalize address: %w", err))
	}

	// Hash password with Argon2id
	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	// Encrypt secret key with AES-256
	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypt secret key: %w", err))
	}

	now := time.Now().UTC()
	principal := &domain.Principal{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Address:      address,
		AccessKey:    accessKey,
		SecretKeyEnc: secretKeyEnc,
		Status:       domain.PrincipalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.WebhookURL != nil {
		principal.WebhookURL = *req.WebhookURL
	}

	if err := s.principalRepo.Create(ctx, principal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create principal: %w", err))
	}

	return &ports.RegisterResponse{
		PrincipalID: principal.ID,
		Address:     address,
		AccessKey:   accessKey,
		SecretKey:   secretKey,
	}, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	principal, err := s.principalRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find principal: %w", err))
	}
	if principal == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Verify password
	valid, err := s.hashSvc.Verify(password, principal.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Check principal status
	if !principal.IsActive() {
		return "", time.Time{}, apperror.ErrPrincipalSuspended()
	}

	// Generate JWT
	token, expiry, err := s.tokenSvc.Generate(principal.ID, principal.AccessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
