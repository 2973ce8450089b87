package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type MarkMessageReadCommand struct {
	Identity  authorization.Identity
	TicketID  uint
	MessageID string
}

type MarkMessageReadUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewMarkMessageReadUseCase(ticketRepo ticket.TicketRepository, authorizer Authorizer, logger logger.Interface) *MarkMessageReadUseCase {
	return &MarkMessageReadUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Execute is idempotent: an already read message is a success without a write.
func (uc *MarkMessageReadUseCase) Execute(ctx context.Context, cmd MarkMessageReadCommand) error {
	return db.RetryOnStale(ctx, db.DefaultWriteAttempts, ticket.ErrStaleWrite, func(ctx context.Context) error {
		t, err := loadAuthorized(ctx, uc.ticketRepo, uc.authorizer, cmd.Identity, authorization.ActionManage, cmd.TicketID)
		if err != nil {
			return err
		}

		changed, err := t.MarkMessageRead(cmd.MessageID)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			return err
		}
		uc.logger.Infow("message marked read", "ticket_id", cmd.TicketID, "message_id", cmd.MessageID)
		return nil
	})
}
