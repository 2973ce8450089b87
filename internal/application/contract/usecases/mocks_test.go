package usecases

import (
	"context"
	"sync"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// memoryContractRepository stores copies and enforces the version check the
// way the SQL repository does.
type memoryContractRepository struct {
	mu        sync.Mutex
	nextID    uint
	contracts map[uint]*contract.Contract
	updates   int

	// BeforeUpdate runs ahead of the version check, e.g. to simulate a
	// concurrent writer.
	BeforeUpdate func(c *contract.Contract)
	ListErr      error
}

func newMemoryContractRepository() *memoryContractRepository {
	return &memoryContractRepository{contracts: map[uint]*contract.Contract{}}
}

func cloneContract(c *contract.Contract) *contract.Contract {
	stages := make([]*contract.Stage, 0, len(c.Stages()))
	for _, s := range c.Stages() {
		stages = append(stages, contract.ReconstructStage(s.ID(), s.Order(), s.Title(), s.Date(), s.Description(), s.Status(), s.Files()))
	}
	return contract.ReconstructContract(c.ID(), c.Fields(), stages, c.Version(), c.CreatedAt(), c.UpdatedAt())
}

func (r *memoryContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if err := c.SetID(r.nextID); err != nil {
		return err
	}
	c.SetVersion(1)
	r.contracts[c.ID()] = cloneContract(c)
	return nil
}

func (r *memoryContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if r.BeforeUpdate != nil {
		r.BeforeUpdate(c)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	stored, ok := r.contracts[c.ID()]
	if !ok {
		return errors.NewNotFoundError("contract not found")
	}
	if stored.Version() != c.Version() {
		return contract.ErrStaleWrite
	}
	c.SetVersion(c.Version() + 1)
	r.contracts[c.ID()] = cloneContract(c)
	return nil
}

func (r *memoryContractRepository) Delete(ctx context.Context, contractID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[contractID]; !ok {
		return errors.NewNotFoundError("contract not found")
	}
	delete(r.contracts, contractID)
	return nil
}

func (r *memoryContractRepository) GetByID(ctx context.Context, contractID uint) (*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[contractID]
	if !ok {
		return nil, errors.NewNotFoundError("contract not found")
	}
	return cloneContract(c), nil
}

func (r *memoryContractRepository) List(ctx context.Context, filter contract.ContractFilter) ([]*contract.Contract, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*contract.Contract{}
	for id := uint(1); id <= r.nextID; id++ {
		c, ok := r.contracts[id]
		if !ok {
			continue
		}
		if filter.ClientID != nil && c.ClientID() != *filter.ClientID {
			continue
		}
		out = append(out, cloneContract(c))
	}
	return out, nil
}

// stored returns the persisted copy, bypassing the clone on read.
func (r *memoryContractRepository) stored(contractID uint) *contract.Contract {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contracts[contractID]
}

type mockAssetStore struct {
	StoreFunc   func(ctx context.Context, upload asset.Upload) (*asset.Asset, error)
	ResolveFunc func(ctx context.Context, assetID uint) (*asset.View, error)
	DeleteFunc  func(ctx context.Context, assetID uint) error

	deleted []uint
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
	return &asset.View{ID: assetID, URL: "https://cdn.test/f", Name: "f.pdf", MimeType: "application/pdf"}, nil
}

func (m *mockAssetStore) Delete(ctx context.Context, assetID uint) error {
	m.deleted = append(m.deleted, assetID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, assetID)
	}
	return nil
}

type mockAssetReader struct {
	GetByIDFunc func(ctx context.Context, assetID uint) (*asset.Asset, error)
}

func (m *mockAssetReader) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, assetID)
	}
	return nil, errors.NewNotFoundError("asset not found")
}

type mockTicketLister struct {
	ListFunc func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketLister) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []*ticket.Ticket{}, nil
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
	grant(authorization.RoleOrganization, authorization.ResourceContract, "read:own")
	grant(authorization.RoleOrganization, authorization.ResourceAsset, "upload:own")
	grant(authorization.RoleAdmin, authorization.ResourceContract, "read:any", "create:any", "update:any", "delete:any")
	grant(authorization.RoleAdmin, authorization.ResourceStage, "read:any", "create:any", "update:any", "delete:any")
	grant(authorization.RoleAdmin, authorization.ResourceAsset, "upload:any", "delete:any")

	return authorization.NewAuthorizer(policies, logger.NewNopLogger())
}

func clientIdentity(userID uint) authorization.Identity {
	return authorization.Identity{UserID: userID, Role: authorization.RoleOrganization, SessionID: "sess"}
}

func adminIdentity() authorization.Identity {
	return authorization.Identity{UserID: 1, Role: authorization.RoleAdmin, SessionID: "sess"}
}
