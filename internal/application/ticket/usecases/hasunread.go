package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type HasUnreadQuery struct {
	Identity authorization.Identity
}

// HasUnreadUseCase backs the notification poll: does any of the caller's
// tickets hold a message from someone else that is still unread.
type HasUnreadUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewHasUnreadUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *HasUnreadUseCase {
	return &HasUnreadUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *HasUnreadUseCase) Execute(ctx context.Context, query HasUnreadQuery) (bool, error) {
	if !query.Identity.IsAuthenticated() {
		return false, nil
	}

	ownerID := query.Identity.UserID
	tickets, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{OwnerID: &ownerID})
	if err != nil {
		uc.logger.Errorw("failed to list tickets for unread check", "user_id", ownerID, "error", err)
		return false, fmt.Errorf("failed to check unread messages: %w", err)
	}

	for _, t := range tickets {
		if t.HasUnreadFor(ownerID) {
			return true, nil
		}
	}
	return false, nil
}
