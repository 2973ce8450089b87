package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/logutil"
)

const sessionLogPrefix = 8

// quietPaths are polled by load balancers and the panel; they are only
// logged when they fail.
var quietPaths = map[string]struct{}{
	"/health":                     {},
	"/panel/notifications/unread": {},
}

// RequestLogger writes one line per request. Authenticated requests carry
// the caller's user id, role and a session id prefix.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if _, quiet := quietPaths[path]; quiet && status < 500 {
			return
		}

		args := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if identity := GetIdentity(c); identity.UserID != 0 {
			args = append(args,
				"user_id", identity.UserID,
				"role", identity.Role.String(),
				"session", logutil.TruncateForLog(identity.SessionID, sessionLogPrefix),
			)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status == 401 || status == 403 || status == 429:
			log.Warnw("request rejected", args...)
		case status >= 400:
			log.Infow("request invalid", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}
