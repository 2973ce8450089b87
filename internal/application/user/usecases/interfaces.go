package usecases

import (
	"context"
	"time"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
)

type SessionStore interface {
	Create(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// timingGuard is implemented by hashers that can spend a comparison's worth
// of time without a stored hash; *auth.BcryptPasswordHasher does.
type timingGuard interface {
	Burn(password string)
}

// TokenIssuer is satisfied by *auth.JWTService.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error)
}
