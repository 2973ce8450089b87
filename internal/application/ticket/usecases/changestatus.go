package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Identity authorization.Identity
	TicketID uint
	Status   string
}

type ChangeStatusResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

// ChangeStatusUseCase is the administrative status change and the only way
// a ticket gets closed.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.TicketRepository, authorizer Authorizer, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid ticket status", cmd.Status)
	}

	err = db.RetryOnStale(ctx, db.DefaultWriteAttempts, ticket.ErrStaleWrite, func(ctx context.Context) error {
		t, err := loadAuthorized(ctx, uc.ticketRepo, uc.authorizer, cmd.Identity, authorization.ActionManage, cmd.TicketID)
		if err != nil {
			return err
		}
		if t.Status() == status {
			return nil
		}
		if err := t.ChangeStatus(status); err != nil {
			return err
		}
		return uc.ticketRepo.Update(ctx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "status", status.String())
	return &ChangeStatusResult{TicketID: cmd.TicketID, Status: status.String()}, nil
}
