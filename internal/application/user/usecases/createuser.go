package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
	vo "github.com/contracthub-inc/contracthub/internal/domain/user/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type CreateUserCommand struct {
	Email       string `validate:"required,email"`
	DisplayName string `validate:"max=100"`
	Password    string `validate:"required,min=8"`
	Role        string `validate:"required,oneof=admin organization"`
}

type CreateUserResult struct {
	UserID uint
	Email  string
	Role   authorization.UserRole
}

// CreateUserUseCase bootstraps accounts from the command line.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already in use", email.String())
	}

	role := authorization.UserRole(cmd.Role)
	u, err := user.NewUser(email, sanitize.Text(cmd.DisplayName), role, password, uc.passwordHasher)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "email", email.String(), "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", role.String())

	return &CreateUserResult{UserID: u.ID(), Email: u.Email(), Role: u.Role()}, nil
}
