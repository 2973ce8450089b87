package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type DeleteStageCommand struct {
	Identity   authorization.Identity
	ContractID uint
	Ref        contract.StageRef
}

// DeleteStageUseCase removes a stage and then its files. A file that fails
// to delete never blocks removing the stage.
type DeleteStageUseCase struct {
	writer stageWriter
	assets AssetStore
	logger logger.Interface
}

func NewDeleteStageUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *DeleteStageUseCase {
	return &DeleteStageUseCase{
		writer: stageWriter{repo: contractRepo, authorizer: authorizer},
		assets: assets,
		logger: logger,
	}
}

func (uc *DeleteStageUseCase) Execute(ctx context.Context, cmd DeleteStageCommand) error {
	uc.logger.Infow("executing delete stage use case", "contract_id", cmd.ContractID, "stage", cmd.Ref.String())

	var removed *contract.Stage
	_, err := uc.writer.mutate(ctx, cmd.Identity, authorization.ActionDelete, cmd.ContractID, cmd.Ref.ByID(), func(c *contract.Contract) error {
		var err error
		removed, err = c.RemoveStage(cmd.Ref)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete stage", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "error", err)
		return err
	}

	releaseAssets(ctx, uc.assets, removed.Files(), uc.logger)

	uc.logger.Infow("stage deleted", "contract_id", cmd.ContractID, "stage_id", removed.ID())
	return nil
}
