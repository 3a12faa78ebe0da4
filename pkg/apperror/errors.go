package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Access Control (ACL) ----

// ErrUnauthorized is returned whenever a caller lacks the role a gated
// operation requires, whether the gateway or the vault ran the check.
func ErrUnauthorized() *AppError {
	return New("ACL_001", "no access permission", http.StatusForbidden)
}

// ---- Custody Business Logic (CUS) ----

func ErrExceedsClaim() *AppError {
	return New("CUS_001", "exceed deposited amount", http.StatusUnprocessableEntity)
}

func ErrNotWhitelisted() *AppError {
	return New("CUS_002", "token is not whitelisted for deposit", http.StatusUnprocessableEntity)
}

func ErrNotOwnerRecord() *AppError {
	return New("CUS_003", "no deposit record for token", http.StatusNotFound)
}

func ErrInsufficientCustody() *AppError {
	return New("CUS_004", "vault custody balance too low", http.StatusConflict)
}

// ErrExternalTransferFailed carries the external token contract's own
// message through unmodified.
func ErrExternalTransferFailed(err error) *AppError {
	msg := "external token transfer failed"
	if err != nil {
		msg = err.Error()
	}
	return Wrap("CUS_005", msg, http.StatusUnprocessableEntity, err)
}

func ErrInvalidAmount() *AppError {
	return New("CUS_006", "Invalid amount", http.StatusBadRequest)
}

func ErrDuplicateDeposit() *AppError {
	return New("CUS_007", "token is already in custody", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("CUS_008", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrPrincipalSuspended() *AppError {
	return New("AUTH_004", "Principal account is suspended", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a CUS_006-style validation error.
func Validation(message string) *AppError {
	return New("CUS_006", message, http.StatusBadRequest)
}
