package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type UpdateContractCommand struct {
	Identity   authorization.Identity
	ContractID uint
	ContractInput
}

// UpdateContractUseCase replaces the editable fields of a contract. Stages
// are left alone.
type UpdateContractUseCase struct {
	contractRepo contract.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewUpdateContractUseCase(contractRepo contract.ContractRepository, authorizer Authorizer, logger logger.Interface) *UpdateContractUseCase {
	return &UpdateContractUseCase{
		contractRepo: contractRepo,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *UpdateContractUseCase) Execute(ctx context.Context, cmd UpdateContractCommand) (*dto.ContractListItemDTO, error) {
	uc.logger.Infow("executing update contract use case", "contract_id", cmd.ContractID)

	fields := cmd.fields()
	var updated *contract.Contract
	err := db.RetryOnStale(ctx, db.DefaultWriteAttempts, contract.ErrStaleWrite, func(ctx context.Context) error {
		c, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
		if err != nil {
			return err
		}
		if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionUpdate, authorization.Resource{
			Type:    authorization.ResourceContract,
			ID:      c.ID(),
			OwnerID: c.ClientID(),
		}); err != nil {
			return err
		}
		if err := c.Update(fields); err != nil {
			return err
		}
		if err := uc.contractRepo.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update contract", "contract_id", cmd.ContractID, "error", err)
		return nil, err
	}

	uc.logger.Infow("contract updated", "contract_id", updated.ID())
	result := dto.ToContractListItemDTO(updated)
	return &result, nil
}
