package handlers

import (
	"context"

	contractdto "github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	contractusecases "github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	ticketusecases "github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/application/user/usecases"
)

// Use case interfaces for the top-level handlers - enables unit testing with mocks.

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type getDashboardUseCase interface {
	Execute(ctx context.Context, query contractusecases.GetDashboardQuery) (*contractdto.DashboardDTO, error)
}

type getActivitiesUseCase interface {
	Execute(ctx context.Context, query contractusecases.GetActivitiesQuery) ([]contractdto.ActivityDTO, error)
}

type hasUnreadUseCase interface {
	Execute(ctx context.Context, query ticketusecases.HasUnreadQuery) (bool, error)
}
