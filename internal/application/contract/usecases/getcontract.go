package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type GetContractQuery struct {
	Identity   authorization.Identity
	ContractID uint
}

// GetContractUseCase returns a contract with its stage list. A stored stage
// list that cannot be decoded reads as empty.
type GetContractUseCase struct {
	contractRepo contract.ContractRepository
	assets       AssetStore
	authorizer   Authorizer
	logger       logger.Interface
}

func NewGetContractUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *GetContractUseCase {
	return &GetContractUseCase{
		contractRepo: contractRepo,
		assets:       assets,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *GetContractUseCase) Execute(ctx context.Context, query GetContractQuery) (*dto.ContractDTO, error) {
	c, err := uc.contractRepo.GetByID(ctx, query.ContractID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.Authorize(ctx, query.Identity, authorization.ActionRead, authorization.Resource{
		Type:    authorization.ResourceContract,
		ID:      c.ID(),
		OwnerID: c.ClientID(),
	}); err != nil {
		return nil, err
	}

	return dto.ToContractDTO(c, resolveFiles(ctx, uc.assets, uc.logger)), nil
}
