package usecases

import (
	"context"
	"sync"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/domain/user"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/email"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)

	updates int
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updates++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	t.SetVersion(t.Version() + 1)
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []*ticket.Ticket{}, nil
}

type mockAssetStore struct {
	StoreFunc   func(ctx context.Context, upload asset.Upload) (*asset.Asset, error)
	ResolveFunc func(ctx context.Context, assetID uint) (*asset.View, error)
	DeleteFunc  func(ctx context.Context, assetID uint) error
}

func (m *mockAssetStore) Store(ctx context.Context, upload asset.Upload) (*asset.Asset, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, upload)
	}
	return nil, errors.NewUpstreamError("store not configured")
}

func (m *mockAssetStore) Resolve(ctx context.Context, assetID uint) (*asset.View, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, assetID)
	}
	return &asset.View{ID: assetID, URL: "https://cdn.test/a", Name: "file.pdf", MimeType: "application/pdf", UploadedBy: ownerID}, nil
}

func (m *mockAssetStore) Delete(ctx context.Context, assetID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, assetID)
	}
	return nil
}

type mockRenderer struct{}

func (mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type mockUserReader struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserReader) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("user not found")
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []email.ReplyNotice
	err     error
}

func (n *recordingNotifier) NotifyReply(ctx context.Context, notice email.ReplyNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return n.err
}

// inlineRunner runs tasks on the calling goroutine so tests can assert on
// their effects right after Execute returns.
type inlineRunner struct {
	names []string
}

func (r *inlineRunner) Go(name string, fn func()) {
	r.names = append(r.names, name)
	fn()
}

type staticPolicies map[[3]string]bool

func (p staticPolicies) Enforce(sub, obj, act string) (bool, error) {
	return p[[3]string{sub, obj, act}], nil
}

func newTestAuthorizer() *authorization.Authorizer {
	policies := staticPolicies{}
	grant := func(role authorization.UserRole, obj authorization.ResourceType, acts ...string) {
		for _, act := range acts {
			policies[[3]string{role.String(), string(obj), act}] = true
		}
	}
	grant(authorization.RoleOrganization, authorization.ResourceTicket, "read:own", "create:own", "reply:own")
	grant(authorization.RoleOrganization, authorization.ResourceAsset, "upload:own")
	grant(authorization.RoleAdmin, authorization.ResourceTicket, "read:any", "create:any", "reply:any", "manage:any")
	grant(authorization.RoleAdmin, authorization.ResourceAsset, "upload:any", "delete:any")

	return authorization.NewAuthorizer(policies, logger.NewNopLogger())
}

func clientIdentity(userID uint) authorization.Identity {
	return authorization.Identity{UserID: userID, Role: authorization.RoleOrganization, SessionID: "sess"}
}

func adminIdentity(userID uint) authorization.Identity {
	return authorization.Identity{UserID: userID, Role: authorization.RoleAdmin, SessionID: "sess"}
}
