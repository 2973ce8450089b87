package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

// csrfExemptPaths are reached before a session exists.
var csrfExemptPaths = map[string]struct{}{
	"/auth/login": {},
}

// CSRF compares the X-CSRF-Token header against the token stored in the
// caller's session. It must run after RequireAuth. Safe methods are skipped.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if _, ok := csrfExemptPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		expected := c.GetString(constants.ContextKeyCSRFToken)
		headerToken := c.GetHeader(utils.CSRFTokenHeader)
		if expected == "" || headerToken == "" ||
			subtle.ConstantTimeCompare([]byte(expected), []byte(headerToken)) != 1 {
			abortWithError(c, errors.NewCSRFMismatchError())
			return
		}

		c.Next()
	}
}

// isSafeMethod returns true for HTTP methods that do not mutate state.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
