package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers"
	contracthandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/contract"
	tickethandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/ticket"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
)

// PanelRouteConfig holds dependencies for the client panel routes.
type PanelRouteConfig struct {
	DashboardHandler    *handlers.DashboardHandler
	NotificationHandler *handlers.NotificationHandler
	ContractHandler     *contracthandlers.Handler
	TicketHandler       *tickethandlers.TicketHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupPanelRoutes configures routes every signed-in user can reach. Use
// cases scope the data to the caller.
func SetupPanelRoutes(engine *gin.Engine, cfg *PanelRouteConfig) {
	panel := engine.Group("/panel")
	panel.Use(middleware.SecurityHeaders(), cfg.AuthMiddleware.RequireAuth(), middleware.CSRF())
	{
		panel.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		panel.GET("/activities", cfg.DashboardHandler.GetActivities)
		panel.GET("/notifications/unread", cfg.NotificationHandler.HasUnread)

		panel.GET("/contracts", cfg.ContractHandler.ListContracts)
		panel.GET("/contracts/:id", cfg.ContractHandler.GetContract)

		tickets := panel.Group("/tickets")
		{
			// /files must be registered before /:id
			tickets.POST("/files", cfg.TicketHandler.UploadMessageFile)

			tickets.GET("", cfg.TicketHandler.ListTickets)
			tickets.POST("", cfg.TicketHandler.CreateTicket)
			tickets.GET("/:id", cfg.TicketHandler.GetTicket)
			tickets.POST("/:id/messages", cfg.TicketHandler.SendMessage)
		}
	}
}
