package ticket

import (
	"context"

	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

// ErrStaleWrite is returned by Update when the stored version moved on since
// the ticket was read.
var ErrStaleWrite = errors.NewConflictError("ticket was modified concurrently, please retry")

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	// Update rewrites the whole ticket, including the message blob, if and
	// only if the stored version still equals ticket.Version().
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

type TicketFilter struct {
	OwnerID *uint
	Status  *vo.TicketStatus
}
