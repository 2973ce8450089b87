package usecases

import (
	"context"
	"io"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const messageFileFolder = "tickets"

type UploadMessageFileCommand struct {
	Identity    authorization.Identity
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadMessageFileUseCase stores a file ahead of the message that will
// reference it.
type UploadMessageFileUseCase struct {
	assets     AssetStore
	authorizer Authorizer
	logger     logger.Interface
}

func NewUploadMessageFileUseCase(assets AssetStore, authorizer Authorizer, logger logger.Interface) *UploadMessageFileUseCase {
	return &UploadMessageFileUseCase{
		assets:     assets,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *UploadMessageFileUseCase) Execute(ctx context.Context, cmd UploadMessageFileCommand) (*asset.View, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionUpload, authorization.Resource{
		Type:    authorization.ResourceAsset,
		OwnerID: cmd.Identity.UserID,
	}); err != nil {
		return nil, err
	}

	stored, err := uc.assets.Store(ctx, asset.Upload{
		FileName:    cmd.FileName,
		ContentType: cmd.ContentType,
		Size:        cmd.Size,
		Body:        cmd.Body,
		UploadedBy:  cmd.Identity.UserID,
		Folder:      messageFileFolder,
	})
	if err != nil {
		uc.logger.Errorw("failed to store message file", "user_id", cmd.Identity.UserID, "file_name", cmd.FileName, "error", err)
		return nil, err
	}

	return uc.assets.Resolve(ctx, stored.ID())
}
