package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type AddStageFileCommand struct {
	Identity   authorization.Identity
	ContractID uint
	Ref        contract.StageRef
	AssetID    uint
}

// AddStageFileUseCase attaches an already stored asset to a stage. Attaching
// the same asset twice succeeds without a write.
type AddStageFileUseCase struct {
	writer stageWriter
	assets AssetStore
	logger logger.Interface
}

func NewAddStageFileUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *AddStageFileUseCase {
	return &AddStageFileUseCase{
		writer: stageWriter{repo: contractRepo, authorizer: authorizer},
		assets: assets,
		logger: logger,
	}
}

// Execute reports whether the asset was newly attached.
func (uc *AddStageFileUseCase) Execute(ctx context.Context, cmd AddStageFileCommand) (bool, error) {
	if _, err := uc.assets.Resolve(ctx, cmd.AssetID); err != nil {
		return false, err
	}

	added := false
	_, err := uc.writer.mutate(ctx, cmd.Identity, authorization.ActionUpdate, cmd.ContractID, cmd.Ref.ByID(), func(c *contract.Contract) error {
		stage, err := c.Stage(cmd.Ref)
		if err != nil {
			return err
		}
		if stage.HasFile(cmd.AssetID) {
			return errNoChange
		}
		added, err = c.AddFileToStage(cmd.Ref, cmd.AssetID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to add stage file", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "asset_id", cmd.AssetID, "error", err)
		return false, err
	}

	uc.logger.Infow("stage file added", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "asset_id", cmd.AssetID)
	return added, nil
}
