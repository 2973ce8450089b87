package http

import (
	contractUsecases "github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	ticketUsecases "github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	loginUC  *usecases.LoginUseCase
	logoutUC *usecases.LogoutUseCase

	// Contract
	listContractsUC   *contractUsecases.ListContractsUseCase
	getContractUC     *contractUsecases.GetContractUseCase
	createContractUC  *contractUsecases.CreateContractUseCase
	updateContractUC  *contractUsecases.UpdateContractUseCase
	deleteContractUC  *contractUsecases.DeleteContractUseCase
	appendStageUC     *contractUsecases.AppendStageUseCase
	updateStageUC     *contractUsecases.UpdateStageUseCase
	deleteStageUC     *contractUsecases.DeleteStageUseCase
	uploadStageFileUC *contractUsecases.UploadStageFileUseCase
	removeStageFileUC *contractUsecases.RemoveStageFileUseCase

	// Dashboard
	getDashboardUC  *contractUsecases.GetDashboardUseCase
	getActivitiesUC *contractUsecases.GetActivitiesUseCase

	// Ticket
	createTicketUC      *ticketUsecases.CreateTicketUseCase
	getTicketUC         *ticketUsecases.GetTicketUseCase
	listTicketsUC       *ticketUsecases.ListTicketsUseCase
	sendMessageUC       *ticketUsecases.SendMessageUseCase
	uploadMessageFileUC *ticketUsecases.UploadMessageFileUseCase
	changeStatusUC      *ticketUsecases.ChangeStatusUseCase
	markMessageReadUC   *ticketUsecases.MarkMessageReadUseCase
	hasUnreadUC         *ticketUsecases.HasUnreadUseCase
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos

	c.ucs = &allUseCases{
		loginUC:  usecases.NewLoginUseCase(repos.userRepo, c.sessions, c.hasher, c.jwtSvc, log),
		logoutUC: usecases.NewLogoutUseCase(c.sessions, log),

		listContractsUC:   contractUsecases.NewListContractsUseCase(repos.contractRepo, c.authorizer, log),
		getContractUC:     contractUsecases.NewGetContractUseCase(repos.contractRepo, c.assets, c.authorizer, log),
		createContractUC:  contractUsecases.NewCreateContractUseCase(repos.contractRepo, c.authorizer, log),
		updateContractUC:  contractUsecases.NewUpdateContractUseCase(repos.contractRepo, c.authorizer, log),
		deleteContractUC:  contractUsecases.NewDeleteContractUseCase(repos.contractRepo, c.assets, c.authorizer, log),
		appendStageUC:     contractUsecases.NewAppendStageUseCase(repos.contractRepo, c.authorizer, log),
		updateStageUC:     contractUsecases.NewUpdateStageUseCase(repos.contractRepo, c.authorizer, log),
		deleteStageUC:     contractUsecases.NewDeleteStageUseCase(repos.contractRepo, c.assets, c.authorizer, log),
		uploadStageFileUC: contractUsecases.NewUploadStageFileUseCase(repos.contractRepo, c.assets, c.authorizer, log),
		removeStageFileUC: contractUsecases.NewRemoveStageFileUseCase(repos.contractRepo, c.assets, c.authorizer, log),

		getDashboardUC:  contractUsecases.NewGetDashboardUseCase(repos.contractRepo, repos.ticketRepo, c.authorizer, log),
		getActivitiesUC: contractUsecases.NewGetActivitiesUseCase(repos.contractRepo, repos.assetRepo, c.authorizer, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, c.assets, c.authorizer, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, c.assets, c.renderer, c.authorizer, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, c.authorizer, log),
		sendMessageUC: ticketUsecases.NewSendMessageUseCase(
			repos.ticketRepo, repos.userRepo, c.assets, c.notifier, c.tasks, c.authorizer, log,
		),
		uploadMessageFileUC: ticketUsecases.NewUploadMessageFileUseCase(c.assets, c.authorizer, log),
		changeStatusUC:      ticketUsecases.NewChangeStatusUseCase(repos.ticketRepo, c.authorizer, log),
		markMessageReadUC:   ticketUsecases.NewMarkMessageReadUseCase(repos.ticketRepo, c.authorizer, log),
		hasUnreadUC:         ticketUsecases.NewHasUnreadUseCase(repos.ticketRepo, log),
	}
}
