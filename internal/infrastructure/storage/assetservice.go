package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AssetService is the asset store: metadata rows in the record store, bytes
// in object storage.
type AssetService struct {
	repo      asset.Repository
	objects   asset.ObjectStorage
	txManager transactor
	urlExpiry time.Duration
	logger    logger.Interface
}

func NewAssetService(
	repo asset.Repository,
	objects asset.ObjectStorage,
	txManager transactor,
	urlExpiry time.Duration,
	log logger.Interface,
) *AssetService {
	return &AssetService{
		repo:      repo,
		objects:   objects,
		txManager: txManager,
		urlExpiry: urlExpiry,
		logger:    log,
	}
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func objectKey(folder, fileName string, now time.Time) (string, error) {
	suffix, err := id.Generate(10)
	if err != nil {
		return "", err
	}

	name := unsafeNameChars.ReplaceAllString(path.Base(fileName), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}

	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "misc"
	}
	return fmt.Sprintf("%s/%s/%s_%s", folder, now.Format("2006/01"), suffix, name), nil
}

// Store records the asset row and uploads the bytes in one transaction, so a
// failed upload leaves no orphan row behind.
func (s *AssetService) Store(ctx context.Context, upload asset.Upload) (*asset.Asset, error) {
	if !asset.IsAllowedMimeType(upload.ContentType) {
		s.logger.Warnw("asset store rejected file type",
			"file_name", upload.FileName,
			"content_type", upload.ContentType,
		)
		return nil, errors.NewUpstreamError("file type is not accepted by the asset store", upload.ContentType)
	}

	key, err := objectKey(upload.Folder, upload.FileName, biztime.NowUTC())
	if err != nil {
		return nil, fmt.Errorf("failed to build object key: %w", err)
	}

	a, err := asset.NewAsset(key, path.Base(upload.FileName), upload.ContentType, upload.Size, upload.UploadedBy)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, a); err != nil {
			return err
		}
		return s.objects.PutObject(txCtx, key, upload.Body, upload.Size, a.MimeType())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("asset stored",
		"asset_id", a.ID(),
		"object_key", key,
		"size", a.Size(),
		"uploaded_by", a.UploadedBy(),
	)
	return a, nil
}

func (s *AssetService) Resolve(ctx context.Context, assetID uint) (*asset.View, error) {
	a, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	u, err := s.objects.ObjectURL(ctx, a.ObjectKey(), s.urlExpiry)
	if err != nil {
		return nil, err
	}

	return &asset.View{
		ID:         a.ID(),
		URL:        u,
		Name:       a.FileName(),
		MimeType:   a.MimeType(),
		IsImage:    a.IsImage(),
		UploadedBy: a.UploadedBy(),
	}, nil
}

// Delete removes the object first; the row is only dropped once the bytes
// are gone, so a failure can be retried with the same ID.
func (s *AssetService) Delete(ctx context.Context, assetID uint) error {
	a, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	if err := s.objects.RemoveObject(ctx, a.ObjectKey()); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, assetID); err != nil {
		return err
	}

	s.logger.Infow("asset deleted", "asset_id", assetID, "object_key", a.ObjectKey())
	return nil
}
