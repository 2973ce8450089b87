package usecases

import (
	"context"
	stderrors "errors"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// errNoChange lets a mutation report that there is nothing to write.
var errNoChange = stderrors.New("no change")

// stageWriter runs a read-modify-write cycle on one contract. Only
// operations whose target survives a concurrent write are replayed: appends
// and writes addressed by stage ID. A positional reference may point at a
// different stage after someone else's write, so it fails with the conflict.
type stageWriter struct {
	repo       contract.ContractRepository
	authorizer Authorizer
}

// mutate loads the contract, checks the caller may perform action on its
// stages, applies fn and persists. retry replays the cycle on a stale write.
func (w stageWriter) mutate(
	ctx context.Context,
	identity authorization.Identity,
	action authorization.Action,
	contractID uint,
	retry bool,
	fn func(c *contract.Contract) error,
) (*contract.Contract, error) {
	attempts := 1
	if retry {
		attempts = db.DefaultWriteAttempts
	}

	var result *contract.Contract
	err := db.RetryOnStale(ctx, attempts, contract.ErrStaleWrite, func(ctx context.Context) error {
		c, err := w.repo.GetByID(ctx, contractID)
		if err != nil {
			return err
		}
		if err := w.authorizer.Authorize(ctx, identity, action, authorization.Resource{
			Type:    authorization.ResourceStage,
			ID:      c.ID(),
			OwnerID: c.ClientID(),
		}); err != nil {
			return err
		}
		if err := fn(c); err != nil {
			if stderrors.Is(err, errNoChange) {
				result = c
				return nil
			}
			return err
		}
		if err := w.repo.Update(ctx, c); err != nil {
			return err
		}
		result = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// releaseAssets deletes files from the asset store. Failures are logged and
// skipped; the owning record is already gone.
func releaseAssets(ctx context.Context, store AssetStore, assetIDs []uint, log logger.Interface) {
	for _, assetID := range assetIDs {
		if err := store.Delete(ctx, assetID); err != nil {
			log.Warnw("failed to delete asset", "asset_id", assetID, "error", err)
		}
	}
}

// resolveFiles turns asset IDs into views, skipping ones that no longer resolve.
func resolveFiles(ctx context.Context, store AssetStore, log logger.Interface) func(ids []uint) []asset.View {
	return func(ids []uint) []asset.View {
		views := make([]asset.View, 0, len(ids))
		for _, assetID := range ids {
			view, err := store.Resolve(ctx, assetID)
			if err != nil {
				log.Warnw("failed to resolve stage file", "asset_id", assetID, "error", err)
				continue
			}
			views = append(views, *view)
		}
		return views
	}
}
