package models

import (
	"time"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
)

type AssetModel struct {
	ID         uint      `gorm:"primarykey"`
	ObjectKey  string    `gorm:"uniqueIndex;not null;size:512"`
	FileName   string    `gorm:"not null;size:255"`
	MimeType   string    `gorm:"not null;size:127"`
	Size       int64     `gorm:"not null"`
	UploadedBy uint      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}
