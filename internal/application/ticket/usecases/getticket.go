package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type GetTicketQuery struct {
	Identity authorization.Identity
	TicketID uint
}

// GetTicketUseCase returns a ticket with its thread newest first. Opening a
// ticket marks every unread message from the other side as read.
type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	assets     AssetStore
	renderer   MessageRenderer
	authorizer Authorizer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	assets AssetStore,
	renderer MessageRenderer,
	authorizer Authorizer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		assets:     assets,
		renderer:   renderer,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	viewerID := query.Identity.UserID

	var t *ticket.Ticket
	err := db.RetryOnStale(ctx, db.DefaultWriteAttempts, ticket.ErrStaleWrite, func(ctx context.Context) error {
		loaded, err := loadAuthorized(ctx, uc.ticketRepo, uc.authorizer, query.Identity, authorization.ActionRead, query.TicketID)
		if err != nil {
			return err
		}

		if loaded.MarkAllReadExcept(viewerID) > 0 {
			if err := uc.ticketRepo.Update(ctx, loaded); err != nil {
				return err
			}
		}
		t = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := t.SortedMessages()
	result := &dto.TicketDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		OwnerID:   t.OwnerID(),
		Status:    t.Status().String(),
		Messages:  make([]dto.MessageDTO, 0, len(messages)),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}

	for _, m := range messages {
		item := dto.ToMessageDTO(m, viewerID)
		html, err := uc.renderer.ToHTMLSanitized(m.Content())
		if err != nil {
			uc.logger.Warnw("failed to render message", "ticket_id", t.ID(), "message_id", m.ID(), "error", err)
		} else {
			item.ContentHTML = html
		}
		item.Attachments = resolveAttachments(ctx, uc.assets, m.Attachments(), uc.logger)
		result.Messages = append(result.Messages, item)
	}

	return result, nil
}

// loadAuthorized fetches a ticket and checks the caller may act on it.
func loadAuthorized(
	ctx context.Context,
	repo ticket.TicketRepository,
	authorizer Authorizer,
	identity authorization.Identity,
	action authorization.Action,
	ticketID uint,
) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := authorizer.Authorize(ctx, identity, action, authorization.Resource{
		Type:    authorization.ResourceTicket,
		ID:      t.ID(),
		OwnerID: t.OwnerID(),
	}); err != nil {
		return nil, err
	}
	return t, nil
}
