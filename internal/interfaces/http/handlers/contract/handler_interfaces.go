package contract

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	"github.com/contracthub-inc/contracthub/internal/domain/asset"
)

// Use case interfaces for Handler - enables unit testing with mocks.

type listContractsUseCase interface {
	Execute(ctx context.Context, query usecases.ListContractsQuery) ([]dto.ContractListItemDTO, error)
}

type getContractUseCase interface {
	Execute(ctx context.Context, query usecases.GetContractQuery) (*dto.ContractDTO, error)
}

type createContractUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateContractCommand) (*dto.ContractListItemDTO, error)
}

type updateContractUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateContractCommand) (*dto.ContractListItemDTO, error)
}

type deleteContractUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteContractCommand) error
}

type appendStageUseCase interface {
	Execute(ctx context.Context, cmd usecases.AppendStageCommand) (*dto.StageMutationResult, error)
}

type updateStageUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateStageCommand) (*dto.StageDTO, error)
}

type deleteStageUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteStageCommand) error
}

type uploadStageFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadStageFileCommand) (*asset.View, error)
}

type removeStageFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveStageFileCommand) error
}
