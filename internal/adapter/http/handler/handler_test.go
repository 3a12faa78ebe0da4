package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"custody-gateway/internal/adapter/http/dto"
	"custody-gateway/internal/adapter/http/middleware"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/internal/core/ports/mocks"
	"custody-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	depositorAddr = "0x00000000000000000000000000000000000000aa"
	recipientAddr = "0x00000000000000000000000000000000000000cc"
	tokenAddr     = "0x00000000000000000000000000000000000000ff"
)

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	principalID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username: "testuser",
		Password: "password123",
	}).Return(&ports.RegisterResponse{
		PrincipalID: principalID,
		Address:     domain.Address(depositorAddr),
		AccessKey:   "ak_test",
		SecretKey:   "sk_test",
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, principalID.String(), data["principal_id"])
	assert.Equal(t, depositorAddr, data["address"])
	assert.Equal(t, "ak_test", data["access_key"])
	assert.Equal(t, "sk_test", data["secret_key"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUsernameExists())

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "testuser", "password123").Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad", "bad").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "bad",
		Password: "bad",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Gateway Handler Tests ---

func authedContext(w *httptest.ResponseRecorder, method, target string, body []byte) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	if body != nil {
		c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	c.Set(middleware.CtxAddress, domain.Address(depositorAddr))
	return c
}

func TestDepositNative_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	txID := uuid.New()
	now := time.Now()

	mockGateway.EXPECT().DepositNative(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx interface{}, req ports.DepositNativeRequest) (*domain.Transfer, error) {
			assert.Equal(t, domain.Address(depositorAddr), req.Principal)
			assert.Equal(t, int64(1000), req.Amount)
			assert.Equal(t, "dep-001", req.ReferenceID)
			return &domain.Transfer{
				ID:          txID,
				ReferenceID: "dep-001",
				Direction:   domain.TransferDirectionDeposit,
				Kind:        domain.AssetKindNative,
				Principal:   domain.Address(depositorAddr),
				Recipient:   domain.Address(depositorAddr),
				Amount:      1000,
				InitiatedBy: domain.Address(depositorAddr),
				CreatedAt:   now,
			}, nil
		},
	)

	body, _ := json.Marshal(dto.DepositNativeRequest{
		ReferenceID: "dep-001",
		Amount:      1000,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.DepositNative(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, txID.String(), data["id"])
	assert.Equal(t, "DEPOSIT", data["direction"])
	assert.Equal(t, "NATIVE", data["kind"])
}

func TestDepositNative_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.DepositNative(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDepositFungible_NotWhitelisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().DepositFungible(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotWhitelisted())

	body, _ := json.Marshal(dto.DepositFungibleRequest{
		ReferenceID: "dep-002",
		Token:       tokenAddr,
		Amount:      500,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.DepositFungible(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CUS_002", resp["error_code"])
}

func TestWithdrawNative_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().WithdrawNative(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnauthorized())

	body, _ := json.Marshal(dto.WithdrawNativeRequest{
		ReferenceID: "wd-001",
		From:        depositorAddr,
		To:          recipientAddr,
		Amount:      400,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.WithdrawNative(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACL_001", resp["error_code"])
	assert.Equal(t, "no access permission", resp["message"])
}

func TestWithdrawNative_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	txID := uuid.New()
	mockGateway.EXPECT().WithdrawNative(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx interface{}, req ports.WithdrawNativeRequest) (*domain.Transfer, error) {
			assert.Equal(t, domain.Address(depositorAddr), req.Caller)
			assert.Equal(t, domain.Address(recipientAddr), req.To)
			return &domain.Transfer{
				ID:          txID,
				ReferenceID: "wd-001",
				Direction:   domain.TransferDirectionWithdraw,
				Kind:        domain.AssetKindNative,
				Principal:   domain.Address(depositorAddr),
				Recipient:   domain.Address(recipientAddr),
				Amount:      400,
				InitiatedBy: domain.Address(depositorAddr),
				CreatedAt:   time.Now(),
			}, nil
		},
	)

	body, _ := json.Marshal(dto.WithdrawNativeRequest{
		ReferenceID: "wd-001",
		From:        depositorAddr,
		To:          recipientAddr,
		Amount:      400,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.WithdrawNative(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSetController_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	registryID := uuid.New()
	mockGateway.EXPECT().SetAccessController(gomock.Any(), domain.Address(depositorAddr), registryID).Return(&domain.ControllerVersion{
		Version:            2,
		RegistryID:         registryID,
		RegistryIdentifier: "ops-v2",
		SetBy:              domain.Address(depositorAddr),
		CreatedAt:          time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.SetControllerRequest{RegistryID: registryID.String()})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPut, "/", body)

	h.SetController(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["version"])
	assert.Equal(t, "ops-v2", data["registry_identifier"])
}

func TestGetControlVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().ControlVersion(gomock.Any()).Return(uint64(3), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetControlVersion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["version"])
}

func TestGetControllerAt_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().AccessControllerAt(gomock.Any(), uint64(9)).Return(nil, apperror.ErrNotFound("controller version"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "version", Value: "9"}}

	h.GetControllerAt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddWhitelist_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().AddWhitelist(gomock.Any(), domain.Address(depositorAddr), domain.WhitelistKindFungible, domain.Address(tokenAddr)).Return(nil)

	body, _ := json.Marshal(dto.WhitelistRequest{
		Kind:  "FUNGIBLE",
		Token: tokenAddr,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.AddWhitelist(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWhitelistByIndex_BadKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?kind=BOGUS", nil)
	c.Params = gin.Params{{Key: "index", Value: "0"}}

	h.WhitelistByIndex(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNativeClaim_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockGatewayService(ctrl)
	h := NewGatewayHandler(mockGateway)

	mockGateway.EXPECT().DepositsOf(gomock.Any(), domain.Address(depositorAddr)).Return(int64(1500), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "principal", Value: depositorAddr}}

	h.GetNativeClaim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1500), data["amount"])
}

// --- Registry Handler Tests ---

func TestCreateRegistry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewRegistryHandler(mockRegistry)

	registryID := uuid.New()
	mockRegistry.EXPECT().CreateRegistry(gomock.Any(), domain.Address(depositorAddr), "ops-v2").Return(&domain.Registry{
		ID:         registryID,
		Identifier: "ops-v2",
		CreatedBy:  domain.Address(depositorAddr),
		CreatedAt:  time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.CreateRegistryRequest{Identifier: "ops-v2"})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.CreateRegistry(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, registryID.String(), data["id"])
}

func TestGrant_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewRegistryHandler(mockRegistry)

	registryID := uuid.New()
	mockRegistry.EXPECT().Grant(gomock.Any(), domain.Address(depositorAddr), registryID, domain.RoleGatewayAccess, domain.Address(recipientAddr)).Return(apperror.ErrUnauthorized())

	body, _ := json.Marshal(dto.RoleGrantRequest{
		Role:      string(domain.RoleGatewayAccess),
		Principal: recipientAddr,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)
	c.Params = gin.Params{{Key: "id", Value: registryID.String()}}

	h.Grant(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHasRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewRegistryHandler(mockRegistry)

	registryID := uuid.New()
	mockRegistry.EXPECT().HasRole(gomock.Any(), registryID, domain.RoleVaultAccess, domain.Address(depositorAddr)).Return(true, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: registryID.String()},
		{Key: "role", Value: string(domain.RoleVaultAccess)},
		{Key: "principal", Value: depositorAddr},
	}

	h.HasRole(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["held"])
}

// --- Reporting Handler Tests ---

func TestListTransfers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	now := time.Now()
	mockReporting.EXPECT().ListTransfers(gomock.Any(), gomock.Any()).Return([]domain.Transfer{
		{
			ID:          uuid.New(),
			ReferenceID: "dep-001",
			Direction:   domain.TransferDirectionDeposit,
			Kind:        domain.AssetKindNative,
			Principal:   domain.Address(depositorAddr),
			Recipient:   domain.Address(depositorAddr),
			Amount:      1000,
			CreatedAt:   now,
		},
	}, int64(1), nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodGet, "/?page=1&page_size=20", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["total_pages"])
}

func TestListTransfers_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	mockReporting.EXPECT().ListTransfers(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodGet, "/", nil)

	h.ListTransfers(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	mockReporting.EXPECT().GetTransferStats(gomock.Any(), domain.Address(depositorAddr)).Return(&ports.TransferStats{
		TotalTransfers:  10,
		Deposits:        7,
		Withdrawals:     3,
		NativeDeposited: 7000,
		NativeWithdrawn: 1200,
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodGet, "/", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["total_transfers"])
	assert.Equal(t, float64(7000), data["native_deposited"])
}

// --- Vault Handler Tests ---

// mockTx implements pgx.Tx for release handler tests.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func TestVaultReleaseNative_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	mockDB := mocks.NewMockDBTransactor(ctrl)
	h := NewVaultHandler(mockVault, mockDB)

	tx := &mockTx{}
	mockDB.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	mockVault.EXPECT().
		ReleaseNative(gomock.Any(), tx, domain.Address(depositorAddr), domain.Address(recipientAddr), int64(4000)).
		Return(nil)

	body, _ := json.Marshal(dto.VaultReleaseNativeRequest{To: recipientAddr, Amount: 4000})
	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.ReleaseNative(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(4000), data["released"])
	assert.Equal(t, recipientAddr, data["to"])
}

func TestVaultReleaseNative_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	mockDB := mocks.NewMockDBTransactor(ctrl)
	h := NewVaultHandler(mockVault, mockDB)

	mockDB.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
	mockVault.EXPECT().
		ReleaseNative(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperror.ErrUnauthorized())

	body, _ := json.Marshal(dto.VaultReleaseNativeRequest{To: recipientAddr, Amount: 100})
	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.ReleaseNative(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACL_001", resp["error_code"])
}

func TestVaultReleaseFungible_InsufficientCustody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	mockDB := mocks.NewMockDBTransactor(ctrl)
	h := NewVaultHandler(mockVault, mockDB)

	mockDB.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
	mockVault.EXPECT().
		ReleaseFungible(gomock.Any(), gomock.Any(), domain.Address(depositorAddr), domain.Address(tokenAddr), domain.Address(recipientAddr), int64(9999)).
		Return(apperror.ErrInsufficientCustody())

	body, _ := json.Marshal(dto.VaultReleaseFungibleRequest{Token: tokenAddr, To: recipientAddr, Amount: 9999})
	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/", body)

	h.ReleaseFungible(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CUS_004", resp["error_code"])
}

func TestVaultCustodyNative_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault, nil)

	mockVault.EXPECT().NativeCustody(gomock.Any()).Return(int64(9000), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetNativeCustody(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(9000), data["balance"])
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
