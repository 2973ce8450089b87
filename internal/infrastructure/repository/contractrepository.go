package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/mappers"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/mapper"
)

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
	logger logger.Interface
}

func NewContractRepository(db *gorm.DB, logger logger.Interface) *ContractRepository {
	return &ContractRepository{
		db:     db,
		mapper: mappers.NewContractMapper(),
		logger: logger,
	}
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	model.Version = 1

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contract", "client_id", model.ClientID, "error", err)
		return fmt.Errorf("failed to create contract: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}
	c.SetVersion(model.Version)
	return nil
}

// Update rewrites the row, stage list included, guarded by the loaded version.
func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	next := c.Version() + 1

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Where("id = ? AND version = ?", model.ID, c.Version()).
		Updates(map[string]any{
			"contract_number": model.ContractNumber,
			"title":           model.Title,
			"description":     model.Description,
			"client_id":       model.ClientID,
			"start_date":      model.StartDate,
			"end_date":        model.EndDate,
			"value":           model.Value,
			"progress":        model.Progress,
			"status":          model.Status,
			"stages":          model.Stages,
			"updated_at":      model.UpdatedAt,
			"version":         next,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update contract", "contract_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("stale contract write rejected", "contract_id", model.ID, "version", c.Version())
		return contract.ErrStaleWrite
	}

	c.SetVersion(next)
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, contractID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ContractModel{}, contractID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("contract not found", fmt.Sprintf("contract %d", contractID))
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID uint) (*contract.Contract, error) {
	var model models.ContractModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, contractID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("contract not found", fmt.Sprintf("contract %d", contractID))
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// List returns matching contracts, newest first.
func (r *ContractRepository) List(ctx context.Context, filter contract.ContractFilter) ([]*contract.Contract, error) {
	var status *string
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}

	var rows []models.ContractModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy("client_id", filter.ClientID), db.StatusIs(status)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return mapper.MapRows(rows, r.mapper.ToDomain), nil
}
