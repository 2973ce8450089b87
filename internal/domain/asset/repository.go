package asset

import (
	"context"
	"io"
	"time"
)

type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, assetID uint) (*Asset, error)
	Delete(ctx context.Context, assetID uint) error
}

// ObjectStorage is the blob side of the asset store.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, key string) error
	// ObjectURL returns a public URL, or a presigned one valid for expiry
	// when the bucket is private.
	ObjectURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Upload is a file received from a client, before it is stored.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  uint
	// Folder groups object keys, e.g. "contracts/12" or "tickets".
	Folder string
}

// View is what callers need to display or link an asset.
type View struct {
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	IsImage  bool   `json:"is_image"`
	// UploadedBy is the owner used for access checks; it is not serialized.
	UploadedBy uint `json:"-"`
}

// Store persists uploads and resolves or releases them by ID.
type Store interface {
	Store(ctx context.Context, upload Upload) (*Asset, error)
	Resolve(ctx context.Context, assetID uint) (*View, error)
	Delete(ctx context.Context, assetID uint) error
}
