package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes. Login runs before a
// session exists, so it is the one mutating route without CSRF.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	auth.Use(middleware.SecurityHeaders())
	{
		auth.POST("/login", cfg.LoginLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), middleware.CSRF(), cfg.AuthHandler.Logout)
	}
}
