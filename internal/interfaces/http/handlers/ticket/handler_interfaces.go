package ticket

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/dto"
	"github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/domain/asset"
)

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]dto.TicketListItemDTO, error)
}

type sendMessageUseCase interface {
	Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*dto.MessageDTO, error)
}

type uploadMessageFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadMessageFileCommand) (*asset.View, error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error)
}

type markMessageReadUseCase interface {
	Execute(ctx context.Context, cmd usecases.MarkMessageReadCommand) error
}
