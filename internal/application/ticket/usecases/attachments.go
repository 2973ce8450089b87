package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// verifyAttachments fails with the store's not_found error when one of the
// referenced assets does not exist, and with forbidden when the caller may
// not use it. Clients can only attach files they uploaded themselves.
func verifyAttachments(
	ctx context.Context,
	store AssetStore,
	authorizer Authorizer,
	identity authorization.Identity,
	assetIDs []uint,
) error {
	for _, assetID := range assetIDs {
		view, err := store.Resolve(ctx, assetID)
		if err != nil {
			return err
		}
		if err := authorizer.Authorize(ctx, identity, authorization.ActionUpload, authorization.Resource{
			Type:    authorization.ResourceAsset,
			ID:      assetID,
			OwnerID: view.UploadedBy,
		}); err != nil {
			return err
		}
	}
	return nil
}

// resolveAttachments skips assets that can no longer be resolved; a thread
// stays readable when a file went missing.
func resolveAttachments(ctx context.Context, store AssetStore, assetIDs []uint, log logger.Interface) []asset.View {
	views := make([]asset.View, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		view, err := store.Resolve(ctx, assetID)
		if err != nil {
			log.Warnw("failed to resolve attachment", "asset_id", assetID, "error", err)
			continue
		}
		views = append(views, *view)
	}
	return views
}
