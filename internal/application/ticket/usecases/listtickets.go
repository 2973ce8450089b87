package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type ListTicketsQuery struct {
	Identity authorization.Identity
	// Status filters on one status when set.
	Status string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Execute lists every ticket for staff and the caller's own tickets for
// everyone else.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	if err := uc.authorizer.Authorize(ctx, query.Identity, authorization.ActionRead, authorization.Resource{
		Type: authorization.ResourceTicket,
	}); err != nil {
		return nil, err
	}

	filter := ticket.TicketFilter{}
	if !uc.authorizer.CanAny(query.Identity, authorization.ActionRead, authorization.ResourceTicket) {
		ownerID := query.Identity.UserID
		filter.OwnerID = &ownerID
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", query.Status)
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Identity.UserID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return dto.ToTicketListItemDTOs(tickets, query.Identity.UserID), nil
}
