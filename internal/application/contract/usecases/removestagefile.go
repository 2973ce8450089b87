package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type RemoveStageFileCommand struct {
	Identity   authorization.Identity
	ContractID uint
	Ref        contract.StageRef
	FileIndex  int
}

// RemoveStageFileUseCase detaches the file at a position and deletes the
// asset behind it. The index is positional, so a concurrent write fails the
// call instead of removing whatever moved into that slot.
type RemoveStageFileUseCase struct {
	writer stageWriter
	assets AssetStore
	logger logger.Interface
}

func NewRemoveStageFileUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *RemoveStageFileUseCase {
	return &RemoveStageFileUseCase{
		writer: stageWriter{repo: contractRepo, authorizer: authorizer},
		assets: assets,
		logger: logger,
	}
}

func (uc *RemoveStageFileUseCase) Execute(ctx context.Context, cmd RemoveStageFileCommand) error {
	uc.logger.Infow("executing remove stage file use case", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "file_index", cmd.FileIndex)

	var assetID uint
	_, err := uc.writer.mutate(ctx, cmd.Identity, authorization.ActionUpdate, cmd.ContractID, false, func(c *contract.Contract) error {
		var err error
		assetID, err = c.RemoveFileFromStage(cmd.Ref, cmd.FileIndex)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to remove stage file", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "error", err)
		return err
	}

	releaseAssets(ctx, uc.assets, []uint{assetID}, uc.logger)
	return nil
}
