package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

// Asset is the metadata of one stored object. The bytes live in the object
// store under objectKey.
type Asset struct {
	id         uint
	objectKey  string
	fileName   string
	mimeType   string
	size       int64
	uploadedBy uint
	createdAt  time.Time
}

func NewAsset(objectKey, fileName, mimeType string, size int64, uploadedBy uint) (*Asset, error) {
	if objectKey == "" {
		return nil, errors.NewValidationError("object key is required")
	}
	if fileName == "" {
		return nil, errors.NewValidationError("file name is required")
	}
	if !IsAllowedMimeType(mimeType) {
		return nil, errors.NewValidationError("file type is not allowed", mimeType)
	}
	if size <= 0 {
		return nil, errors.NewValidationError("file is empty")
	}

	return &Asset{
		objectKey:  objectKey,
		fileName:   fileName,
		mimeType:   NormalizeMimeType(mimeType),
		size:       size,
		uploadedBy: uploadedBy,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructAsset(id uint, objectKey, fileName, mimeType string, size int64, uploadedBy uint, createdAt time.Time) *Asset {
	return &Asset{
		id:         id,
		objectKey:  objectKey,
		fileName:   fileName,
		mimeType:   mimeType,
		size:       size,
		uploadedBy: uploadedBy,
		createdAt:  createdAt,
	}
}

func (a *Asset) ID() uint             { return a.id }
func (a *Asset) ObjectKey() string    { return a.objectKey }
func (a *Asset) FileName() string     { return a.fileName }
func (a *Asset) MimeType() string     { return a.mimeType }
func (a *Asset) Size() int64          { return a.size }
func (a *Asset) UploadedBy() uint     { return a.uploadedBy }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }

func (a *Asset) IsImage() bool {
	return strings.HasPrefix(a.mimeType, "image/")
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}
