package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type UploadStageFileCommand struct {
	Identity    authorization.Identity
	ContractID  uint
	Ref         contract.StageRef
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadStageFileUseCase stores an upload and attaches it to a stage. When
// attaching fails the stored file is released again.
type UploadStageFileUseCase struct {
	contractRepo contract.ContractRepository
	assets       AssetStore
	attach       *AddStageFileUseCase
	authorizer   Authorizer
	logger       logger.Interface
}

func NewUploadStageFileUseCase(
	contractRepo contract.ContractRepository,
	assets AssetStore,
	authorizer Authorizer,
	logger logger.Interface,
) *UploadStageFileUseCase {
	return &UploadStageFileUseCase{
		contractRepo: contractRepo,
		assets:       assets,
		attach:       NewAddStageFileUseCase(contractRepo, assets, authorizer, logger),
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *UploadStageFileUseCase) Execute(ctx context.Context, cmd UploadStageFileCommand) (*asset.View, error) {
	uc.logger.Infow("executing upload stage file use case", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "file_name", cmd.FileName)

	c, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionUpload, authorization.Resource{
		Type:    authorization.ResourceAsset,
		OwnerID: cmd.Identity.UserID,
	}); err != nil {
		return nil, err
	}
	if _, err := c.Stage(cmd.Ref); err != nil {
		return nil, err
	}

	stored, err := uc.assets.Store(ctx, asset.Upload{
		FileName:    cmd.FileName,
		ContentType: cmd.ContentType,
		Size:        cmd.Size,
		Body:        cmd.Body,
		UploadedBy:  cmd.Identity.UserID,
		Folder:      fmt.Sprintf("contracts/%d", c.ID()),
	})
	if err != nil {
		uc.logger.Errorw("failed to store stage file", "contract_id", cmd.ContractID, "error", err)
		return nil, err
	}

	if _, err := uc.attach.Execute(ctx, AddStageFileCommand{
		Identity:   cmd.Identity,
		ContractID: cmd.ContractID,
		Ref:        cmd.Ref,
		AssetID:    stored.ID(),
	}); err != nil {
		releaseAssets(ctx, uc.assets, []uint{stored.ID()}, uc.logger)
		return nil, err
	}

	return uc.assets.Resolve(ctx, stored.ID())
}
