package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/contracthub-inc/contracthub/docs"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/routes"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
	"github.com/contracthub-inc/contracthub/internal/shared/version"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	utils.RegisterBindingValidations()

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
	})

	routes.SetupPanelRoutes(r.engine, &routes.PanelRouteConfig{
		DashboardHandler:    r.hdlrs.dashboardHandler,
		NotificationHandler: r.hdlrs.notificationHandler,
		ContractHandler:     r.hdlrs.contractHandler,
		TicketHandler:       r.hdlrs.ticketHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		ContractHandler: r.hdlrs.contractHandler,
		TicketHandler:   r.hdlrs.ticketHandler,
		AuthMiddleware:  r.authMiddleware,
		Logger:          r.log,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	if sqlDB, err := r.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := r.redis.Ping(c.Request.Context()).Err(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status})
}

// Shutdown waits for in-flight reply notifications. The HTTP server must be
// stopped before this is called.
func (r *Router) Shutdown(ctx context.Context) {
	if r.tasks == nil {
		return
	}
	if err := r.tasks.Wait(ctx); err != nil {
		r.log.Warnw("background tasks did not finish before shutdown", "error", err)
	}
}
