package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/user"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/email"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
)

// Authorizer is satisfied by *authorization.Authorizer.
type Authorizer interface {
	Authorize(ctx context.Context, identity authorization.Identity, action authorization.Action, resource authorization.Resource) error
	CanAny(identity authorization.Identity, action authorization.Action, resourceType authorization.ResourceType) bool
}

type AssetStore = asset.Store

type MessageRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type ReplyNotifier interface {
	NotifyReply(ctx context.Context, notice email.ReplyNotice) error
}

type UserReader interface {
	GetByID(ctx context.Context, userID uint) (*user.User, error)
}

// TaskRunner runs fire-and-forget work; *goroutine.Group satisfies it.
type TaskRunner interface {
	Go(name string, fn func())
}
