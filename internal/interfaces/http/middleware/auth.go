package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/auth"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/constants"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type SessionReader interface {
	Get(ctx context.Context, sessionID string) (*session.Session, error)
}

// AuthMiddleware accepts a JWT only while its server-side session exists, so
// logout revokes the token immediately.
type AuthMiddleware struct {
	tokens   TokenVerifier
	sessions SessionReader
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, sessions SessionReader, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try to get token from cookie first
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader(constants.HeaderAuthorization)
			if authHeader == "" {
				abortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				abortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
				return
			}

			token = parts[1]
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			abortWithError(c, err)
			return
		}

		sess, err := m.sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.GetAuthError(err) == nil {
				m.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
			}
			abortWithError(c, err)
			return
		}
		if sess.UserID != claims.UserID {
			m.logger.Warnw("token does not match its session", "user_id", claims.UserID, "session_id", claims.SessionID)
			abortWithError(c, errors.NewSessionExpiredError())
			return
		}

		SetIdentity(c, authorization.Identity{
			UserID:    sess.UserID,
			Role:      sess.Role,
			SessionID: sess.ID,
		})
		c.Set(constants.ContextKeyCSRFToken, sess.CSRFToken)

		c.Next()
	}
}

// SetIdentity stores the caller in the gin context along with the flat keys
// the request logger reads.
func SetIdentity(c *gin.Context, identity authorization.Identity) {
	c.Set(constants.ContextKeyIdentity, identity)
	c.Set(constants.ContextKeyUserID, identity.UserID)
	c.Set(constants.ContextKeyRole, identity.Role.String())
	c.Set(constants.ContextKeySessionID, identity.SessionID)
}

// GetIdentity returns the authenticated caller, or the zero identity on
// routes without RequireAuth.
func GetIdentity(c *gin.Context) authorization.Identity {
	v, ok := c.Get(constants.ContextKeyIdentity)
	if !ok {
		return authorization.Identity{}
	}
	identity, _ := v.(authorization.Identity)
	return identity
}

func abortWithError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
