package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type DeleteContractCommand struct {
	Identity   authorization.Identity
	ContractID uint
}

// DeleteContractUseCase removes a contract, then releases the files of all
// its stages.
type DeleteContractUseCase struct {
	contractRepo contract.ContractRepository
	assets       AssetStore
	authorizer   Authorizer
	logger       logger.Interface
}

func NewDeleteContractUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *DeleteContractUseCase {
	return &DeleteContractUseCase{
		contractRepo: contractRepo,
		assets:       assets,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *DeleteContractUseCase) Execute(ctx context.Context, cmd DeleteContractCommand) error {
	uc.logger.Infow("executing delete contract use case", "contract_id", cmd.ContractID)

	c, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return err
	}
	if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionDelete, authorization.Resource{
		Type:    authorization.ResourceContract,
		ID:      c.ID(),
		OwnerID: c.ClientID(),
	}); err != nil {
		return err
	}

	if err := uc.contractRepo.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete contract", "contract_id", c.ID(), "error", err)
		return err
	}

	releaseAssets(ctx, uc.assets, c.AllFiles(), uc.logger)

	uc.logger.Infow("contract deleted", "contract_id", c.ID())
	return nil
}
