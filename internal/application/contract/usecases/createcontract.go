package usecases

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

// ContractInput carries raw contract fields as received from a client.
type ContractInput struct {
	ContractNumber string
	Title          string
	Description    string
	ClientID       uint
	StartDate      string
	EndDate        string
	Value          string
	Progress       int
	Status         string
}

func (in ContractInput) fields() contract.Fields {
	return contract.Fields{
		ContractNumber: sanitize.Text(in.ContractNumber),
		Title:          sanitize.Text(in.Title),
		Description:    sanitize.Multiline(in.Description),
		ClientID:       in.ClientID,
		StartDate:      sanitize.Text(in.StartDate),
		EndDate:        sanitize.Text(in.EndDate),
		Value:          sanitize.Text(in.Value),
		Progress:       in.Progress,
		Status:         sanitize.Text(in.Status),
	}
}

type CreateContractCommand struct {
	Identity authorization.Identity
	ContractInput
}

type CreateContractUseCase struct {
	contractRepo contract.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewCreateContractUseCase(contractRepo contract.ContractRepository, authorizer Authorizer, logger logger.Interface) *CreateContractUseCase {
	return &CreateContractUseCase{
		contractRepo: contractRepo,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (*dto.ContractListItemDTO, error) {
	uc.logger.Infow("executing create contract use case", "client_id", cmd.ClientID)

	if err := uc.authorizer.Authorize(ctx, cmd.Identity, authorization.ActionCreate, authorization.Resource{
		Type:    authorization.ResourceContract,
		OwnerID: cmd.ClientID,
	}); err != nil {
		return nil, err
	}

	c, err := contract.NewContract(cmd.fields())
	if err != nil {
		return nil, err
	}

	if err := uc.contractRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create contract", "client_id", cmd.ClientID, "error", err)
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	uc.logger.Infow("contract created", "contract_id", c.ID(), "client_id", c.ClientID())
	result := dto.ToContractListItemDTO(c)
	return &result, nil
}
