package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
)

// Authorizer is satisfied by *authorization.Authorizer.
type Authorizer interface {
	Authorize(ctx context.Context, identity authorization.Identity, action authorization.Action, resource authorization.Resource) error
	CanAny(identity authorization.Identity, action authorization.Action, resourceType authorization.ResourceType) bool
}

type AssetStore = asset.Store

// AssetReader reads asset metadata without touching object storage.
type AssetReader interface {
	GetByID(ctx context.Context, assetID uint) (*asset.Asset, error)
}

type TicketLister interface {
	List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}
