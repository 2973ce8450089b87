package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	Identity    authorization.Identity
	Title       string
	Content     string
	Attachments []uint
	// OwnerID opens the ticket on behalf of another user. Staff only.
	OwnerID uint
}

type CreateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	MessageID string `json:"message_id"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	assets     AssetStore
	authorizer Authorizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		assets:     assets,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Identity.UserID)

	ownerID := cmd.Identity.UserID
	if cmd.OwnerID != 0 {
		ownerID = cmd.OwnerID
	}

	if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionCreate, authorization.Resource{
		Type:    authorization.ResourceTicket,
		OwnerID: ownerID,
	}); err != nil {
		return nil, err
	}

	if err := verifyAttachments(ctx, uc.assets, uc.authorizer, cmd.Identity, cmd.Attachments); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(
		ownerID,
		sanitize.Text(cmd.Title),
		sanitize.Multiline(cmd.Content),
		cmd.Attachments,
		id.NewMessageID,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "owner_id", ownerID)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		MessageID: t.Messages()[0].ID(),
	}, nil
}
