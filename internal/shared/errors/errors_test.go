package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapToStatusCodes(t *testing.T) {
	tests := []struct {
		err  *AppError
		typ  ErrorType
		code int
	}{
		{NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{NewUnauthorizedError("who"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{NewNotFoundError("gone"), ErrorTypeNotFound, http.StatusNotFound},
		{NewConflictError("stale"), ErrorTypeConflict, http.StatusConflict},
		{NewRateLimitedError("slow down"), ErrorTypeRateLimited, http.StatusTooManyRequests},
		{NewUpstreamError("minio"), ErrorTypeUpstream, http.StatusBadGateway},
		{NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestTypeChecksSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to update contract: %w", NewConflictError("contract was modified concurrently"))

	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}

func TestAuthErrorsUnwrapToAppError(t *testing.T) {
	err := fmt.Errorf("login: %w", NewInvalidCredentialsError())

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInvalidCredentials, appErr.Type)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)

	csrf := GetAppError(NewCSRFMismatchError())
	require.NotNil(t, csrf)
	assert.Equal(t, http.StatusForbidden, csrf.Code)
}

func TestAppErrorMessageIncludesDetails(t *testing.T) {
	assert.Equal(t, "not_found: stage not found (stg_x)", NewNotFoundError("stage not found", "stg_x").Error())
	assert.Equal(t, "validation_error: title is required", NewValidationError("title is required").Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a@b.c' for key 'email'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
}
