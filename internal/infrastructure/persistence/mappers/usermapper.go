package mappers

import (
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
	vo "github.com/contracthub-inc/contracthub/internal/domain/user/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(rows []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.DisplayName,
		model.PasswordHash,
		model.Role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		DisplayName:  entity.DisplayName(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(rows []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceErr(rows, m.ToEntity)
}
