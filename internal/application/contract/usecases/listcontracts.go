package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type ListContractsQuery struct {
	Identity authorization.Identity
}

type ListContractsUseCase struct {
	contractRepo contract.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewListContractsUseCase(contractRepo contract.ContractRepository, authorizer Authorizer, logger logger.Interface) *ListContractsUseCase {
	return &ListContractsUseCase{
		contractRepo: contractRepo,
		authorizer:   authorizer,
		logger:       logger,
	}
}

// Execute returns the caller's contracts, or all of them for staff.
func (uc *ListContractsUseCase) Execute(ctx context.Context, query ListContractsQuery) ([]dto.ContractListItemDTO, error) {
	if err := uc.authorizer.Authorize(ctx, query.Identity, authorization.ActionRead, authorization.Resource{
		Type: authorization.ResourceContract,
	}); err != nil {
		return nil, err
	}

	filter := contract.ContractFilter{}
	if !uc.authorizer.CanAny(query.Identity, authorization.ActionRead, authorization.ResourceContract) {
		clientID := query.Identity.UserID
		filter.ClientID = &clientID
	}

	contracts, err := uc.contractRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "user_id", query.Identity.UserID, "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return dto.ToContractListItemDTOs(contracts), nil
}
