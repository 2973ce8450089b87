package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/contracthub-inc/contracthub/internal/shared/config"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const defaultPresignExpiry = time.Hour

// MinioStorage keeps asset bytes in one S3-compatible bucket.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    logger.Interface
}

// NewMinioStorage connects to the endpoint and creates the bucket when it
// does not exist yet. The bucket stays private; objects are served through
// presigned URLs unless cfg.PublicURL points at a public gateway.
func NewMinioStorage(ctx context.Context, cfg *config.StorageConfig, log logger.Interface) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		log.Infow("asset bucket created", "bucket", cfg.Bucket)
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    log,
	}, nil
}

func (s *MinioStorage) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Errorw("failed to upload object", "key", key, "error", err)
		return errors.NewUpstreamError("failed to store file")
	}
	return nil
}

func (s *MinioStorage) RemoveObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Errorw("failed to remove object", "key", key, "error", err)
		return errors.NewUpstreamError("failed to delete file")
	}
	return nil
}

func (s *MinioStorage) ObjectURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
	}

	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		s.logger.Errorw("failed to presign object url", "key", key, "error", err)
		return "", errors.NewUpstreamError("failed to resolve file url")
	}
	return u.String(), nil
}
