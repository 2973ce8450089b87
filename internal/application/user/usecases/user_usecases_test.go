package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

func createTestUser(t *testing.T, repo *mockUserRepository) {
	t.Helper()
	uc := NewCreateUserUseCase(repo, prefixHasher{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Email:       "Client@Example.com",
		DisplayName: "شرکت نمونه",
		Password:    "secret123",
		Role:        "organization",
	})
	require.NoError(t, err)
}

func TestCreateUserUseCase(t *testing.T) {
	repo := newMockUserRepository()
	createTestUser(t, repo)

	u, err := repo.GetByEmail(context.Background(), "client@example.com")
	require.NoError(t, err)
	assert.Equal(t, "شرکت نمونه", u.DisplayName())
	assert.Equal(t, authorization.RoleOrganization, u.Role())
	assert.Equal(t, "h:secret123", u.PasswordHash())

	tests := []struct {
		name  string
		cmd   CreateUserCommand
		check func(error) bool
	}{
		{"duplicate email", CreateUserCommand{Email: "client@example.com", Password: "secret123", Role: "admin"}, errors.IsConflictError},
		{"bad role", CreateUserCommand{Email: "a@example.com", Password: "secret123", Role: "root"}, errors.IsValidationError},
		{"weak password", CreateUserCommand{Email: "a@example.com", Password: "onlyletters", Role: "admin"}, errors.IsValidationError},
		{"bad email", CreateUserCommand{Email: "nope", Password: "secret123", Role: "admin"}, errors.IsValidationError},
	}

	uc := NewCreateUserUseCase(repo, prefixHasher{}, logger.NewNopLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestLoginUseCase(t *testing.T) {
	repo := newMockUserRepository()
	createTestUser(t, repo)
	sessions := newMockSessionStore()
	uc := NewLoginUseCase(repo, sessions, prefixHasher{}, &mockTokenIssuer{}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Email: " client@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token-"+result.SessionID, result.AccessToken)
	assert.NotEmpty(t, result.CSRFToken)
	require.Contains(t, sessions.sessions, result.SessionID)
	stored := sessions.sessions[result.SessionID]
	assert.Equal(t, result.User.ID(), stored.UserID)
	assert.Equal(t, result.CSRFToken, stored.CSRFToken)
	assert.Equal(t, authorization.RoleOrganization, stored.Role)
}

func TestLoginUseCase_RejectsBadCredentials(t *testing.T) {
	repo := newMockUserRepository()
	createTestUser(t, repo)
	sessions := newMockSessionStore()
	uc := NewLoginUseCase(repo, sessions, prefixHasher{}, &mockTokenIssuer{}, logger.NewNopLogger())

	for _, cmd := range []LoginCommand{
		{Email: "client@example.com", Password: "wrong1234"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		_, err := uc.Execute(context.Background(), cmd)
		authErr := errors.GetAuthError(err)
		require.NotNil(t, authErr)
		assert.Equal(t, errors.ErrorTypeInvalidCredentials, authErr.Type)
	}
	assert.Empty(t, sessions.sessions)
}

func TestLoginUseCase_UnknownEmailBurnsHashTime(t *testing.T) {
	repo := newMockUserRepository()
	createTestUser(t, repo)
	hasher := &burnCountingHasher{}
	uc := NewLoginUseCase(repo, newMockSessionStore(), hasher, &mockTokenIssuer{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, 1, hasher.burns)

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "client@example.com", Password: "wrong1234"})
	require.Error(t, err)
	assert.Equal(t, 1, hasher.burns)
}

func TestLoginUseCase_TokenFailureDropsSession(t *testing.T) {
	repo := newMockUserRepository()
	createTestUser(t, repo)
	sessions := newMockSessionStore()
	tokens := &mockTokenIssuer{
		GenerateFunc: func(uint, string, authorization.UserRole) (string, time.Time, error) {
			return "", time.Time{}, fmt.Errorf("signing failed")
		},
	}
	uc := NewLoginUseCase(repo, sessions, prefixHasher{}, tokens, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "client@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Empty(t, sessions.sessions)
}

func TestLogoutUseCase(t *testing.T) {
	sessions := newMockSessionStore()
	sessions.sessions["s1"] = nil
	uc := NewLogoutUseCase(sessions, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "s1"}))
	assert.NotContains(t, sessions.sessions, "s1")
}
