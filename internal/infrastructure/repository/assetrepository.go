package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/mappers"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := mappers.AssetToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("asset object key already exists", model.ObjectKey)
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	var model models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, assetID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("file not found", fmt.Sprintf("asset %d", assetID))
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return mappers.AssetToDomain(&model), nil
}

func (r *AssetRepository) Delete(ctx context.Context, assetID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AssetModel{}, assetID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("file not found", fmt.Sprintf("asset %d", assetID))
	}
	return nil
}
