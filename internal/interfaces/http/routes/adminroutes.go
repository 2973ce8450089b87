package routes

import (
	"github.com/gin-gonic/gin"

	contracthandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/contract"
	tickethandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/ticket"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// AdminRouteConfig holds dependencies for staff-only routes.
type AdminRouteConfig struct {
	ContractHandler *contracthandlers.Handler
	TicketHandler   *tickethandlers.TicketHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Logger          logger.Interface
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(
		middleware.SecurityHeaders(),
		cfg.AuthMiddleware.RequireAuth(),
		middleware.CSRF(),
		middleware.RequireRole(cfg.Logger, authorization.RoleAdmin),
	)

	contracts := admin.Group("/contracts")
	{
		contracts.POST("", cfg.ContractHandler.CreateContract)
		contracts.PATCH("/:id", cfg.ContractHandler.UpdateContract)
		contracts.DELETE("/:id", cfg.ContractHandler.DeleteContract)

		contracts.POST("/:id/stages", cfg.ContractHandler.AppendStage)
		contracts.PATCH("/:id/stages/:stage", cfg.ContractHandler.UpdateStage)
		contracts.PATCH("/:id/stages/:stage/status", cfg.ContractHandler.UpdateStageStatus)
		contracts.PATCH("/:id/stages/:stage/title", cfg.ContractHandler.UpdateStageTitle)
		contracts.DELETE("/:id/stages/:stage", cfg.ContractHandler.DeleteStage)

		contracts.POST("/:id/stages/:stage/files", cfg.ContractHandler.UploadStageFile)
		contracts.DELETE("/:id/stages/:stage/files/:file", cfg.ContractHandler.RemoveStageFile)
	}

	tickets := admin.Group("/tickets")
	{
		tickets.POST("/:id/messages", cfg.TicketHandler.SendMessage)
		tickets.PATCH("/:id/status", cfg.TicketHandler.ChangeStatus)
		tickets.POST("/:id/messages/:messageId/read", cfg.TicketHandler.MarkMessageRead)
	}
}
