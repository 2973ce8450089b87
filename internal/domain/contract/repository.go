package contract

import (
	"context"

	vo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

// ErrStaleWrite is returned by Update when another writer changed the
// contract after it was read.
var ErrStaleWrite = errors.NewConflictError("contract was modified concurrently, please retry")

type ContractRepository interface {
	Create(ctx context.Context, contract *Contract) error
	// Update persists all fields and the whole stage list, guarded by the
	// version the contract was loaded with.
	Update(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, contractID uint) error
	GetByID(ctx context.Context, contractID uint) (*Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*Contract, error)
}

type ContractFilter struct {
	ClientID *uint
	Status   *vo.ContractStatus
}
