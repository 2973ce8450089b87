package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/mappers"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/mapper"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	model.Version = 1

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "owner_id", model.OwnerID, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}
	t.SetVersion(model.Version)
	return nil
}

// Update writes the ticket only if nobody else wrote it since it was loaded.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	next := t.Version() + 1

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, t.Version()).
		Updates(map[string]any{
			"title":      model.Title,
			"status":     model.Status,
			"messages":   model.Messages,
			"updated_at": model.UpdatedAt,
			"version":    next,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "ticket_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("stale ticket write rejected", "ticket_id", model.ID, "version", t.Version())
		return ticket.ErrStaleWrite
	}

	t.SetVersion(next)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, ticketID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("ticket %d", ticketID))
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// List returns matching tickets, most recently updated first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	var status *string
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}

	var rows []models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(
			db.OwnedBy("owner_id", filter.OwnerID),
			db.StatusIs(status),
		).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return mapper.MapRows(rows, r.mapper.ToDomain), nil
}
