package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// RequireRole rejects callers outside roles before the handler runs. Use
// cases still authorize each operation; this only keeps non-staff out of
// the admin tree.
func RequireRole(log logger.Interface, roles ...authorization.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if !identity.IsAuthenticated() {
			abortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		log.Warnw("role check failed", "user_id", identity.UserID, "role", identity.Role.String(), "required_roles", roles)
		abortWithError(c, errors.NewForbiddenError("insufficient permissions"))
	}
}
