package usecases

import (
	"context"
	"fmt"
	"math/big"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	cvo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	tvo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

type GetDashboardQuery struct {
	Identity authorization.Identity
}

// GetDashboardUseCase summarizes the caller's own contracts and tickets.
type GetDashboardUseCase struct {
	contractRepo contract.ContractRepository
	tickets      TicketLister
	authorizer   Authorizer
	logger       logger.Interface
}

func NewGetDashboardUseCase(
	contractRepo contract.ContractRepository,
	tickets TicketLister,
	authorizer Authorizer,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		contractRepo: contractRepo,
		tickets:      tickets,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	clientID := query.Identity.UserID
	if err := uc.authorizer.Authorize(ctx, query.Identity, authorization.ActionRead, authorization.Resource{
		Type:    authorization.ResourceContract,
		OwnerID: clientID,
	}); err != nil {
		return nil, err
	}

	contracts, err := uc.contractRepo.List(ctx, contract.ContractFilter{ClientID: &clientID})
	if err != nil {
		uc.logger.Errorw("failed to list contracts for dashboard", "user_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	openStatus := tvo.StatusOpen
	open, err := uc.tickets.List(ctx, ticket.TicketFilter{OwnerID: &clientID, Status: &openStatus})
	if err != nil {
		uc.logger.Errorw("failed to list tickets for dashboard", "user_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	stats := &dto.DashboardDTO{
		Total:       len(contracts),
		OpenTickets: len(open),
	}
	stats.TotalValue = totalValue(contracts).String()
	for _, c := range contracts {
		switch c.Status() {
		case cvo.ContractCompleted:
			stats.Completed++
		case cvo.ContractInProgress:
			stats.InProgress++
		}
	}

	return stats, nil
}

// totalValue sums the digits found in each free-text value, so
// "۱۲۰,۰۰۰,۰۰۰ ریال" counts as 120000000. Values can exceed int64.
func totalValue(contracts []*contract.Contract) *big.Int {
	sum := new(big.Int)
	for _, c := range contracts {
		digits := sanitize.Digits(c.Value())
		if digits == "" {
			continue
		}
		if n, ok := new(big.Int).SetString(digits, 10); ok {
			sum.Add(sum, n)
		}
	}
	return sum
}
