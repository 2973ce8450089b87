package mappers

import (
	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
)

func AssetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:         a.ID(),
		ObjectKey:  a.ObjectKey(),
		FileName:   a.FileName(),
		MimeType:   a.MimeType(),
		Size:       a.Size(),
		UploadedBy: a.UploadedBy(),
		CreatedAt:  a.CreatedAt(),
	}
}

func AssetToDomain(m *models.AssetModel) *asset.Asset {
	return asset.ReconstructAsset(m.ID, m.ObjectKey, m.FileName, m.MimeType, m.Size, m.UploadedBy, m.CreatedAt)
}
