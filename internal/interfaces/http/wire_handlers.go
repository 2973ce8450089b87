package http

import (
	"strings"

	"github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers"
	contractHandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/contract"
	ticketHandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/ticket"
)

const bytesPerMB = 1 << 20

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	dashboardHandler    *handlers.DashboardHandler
	notificationHandler *handlers.NotificationHandler
	contractHandler     *contractHandlers.Handler
	ticketHandler       *ticketHandlers.TicketHandler
}

// ============================================================
// Section 3: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs
	maxUploadBytes := c.cfg.Storage.MaxUploadMB * bytesPerMB
	secureCookie := strings.HasPrefix(c.cfg.Server.BaseURL, "https://")

	c.hdlrs = &allHandlers{
		authHandler:         handlers.NewAuthHandler(ucs.loginUC, ucs.logoutUC, secureCookie, log),
		dashboardHandler:    handlers.NewDashboardHandler(ucs.getDashboardUC, ucs.getActivitiesUC, log),
		notificationHandler: handlers.NewNotificationHandler(ucs.hasUnreadUC, log),
		contractHandler: contractHandlers.NewHandler(contractHandlers.UseCases{
			ListContracts:   ucs.listContractsUC,
			GetContract:     ucs.getContractUC,
			CreateContract:  ucs.createContractUC,
			UpdateContract:  ucs.updateContractUC,
			DeleteContract:  ucs.deleteContractUC,
			AppendStage:     ucs.appendStageUC,
			UpdateStage:     ucs.updateStageUC,
			DeleteStage:     ucs.deleteStageUC,
			UploadStageFile: ucs.uploadStageFileUC,
			RemoveStageFile: ucs.removeStageFileUC,
		}, maxUploadBytes, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.sendMessageUC,
			ucs.uploadMessageFileUC,
			ucs.changeStatusUC,
			ucs.markMessageReadUC,
			maxUploadBytes,
			log,
		),
	}
}
