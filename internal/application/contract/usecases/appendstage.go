package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

type AppendStageCommand struct {
	Identity    authorization.Identity
	ContractID  uint
	Title       string
	Date        string
	Description string
	Status      string
}

type AppendStageUseCase struct {
	writer stageWriter
	logger logger.Interface
}

func NewAppendStageUseCase(contractRepo contract.ContractRepository, authorizer Authorizer, logger logger.Interface) *AppendStageUseCase {
	return &AppendStageUseCase{
		writer: stageWriter{repo: contractRepo, authorizer: authorizer},
		logger: logger,
	}
}

// Execute appends a stage with no files and reports its index, which is
// always the last position of the list that was written.
func (uc *AppendStageUseCase) Execute(ctx context.Context, cmd AppendStageCommand) (*dto.StageMutationResult, error) {
	uc.logger.Infow("executing append stage use case", "contract_id", cmd.ContractID)

	input := contract.StageInput{
		Title:       sanitize.Text(cmd.Title),
		Date:        sanitize.Text(cmd.Date),
		Description: sanitize.Multiline(cmd.Description),
		Status:      sanitize.Text(cmd.Status),
	}

	var (
		index int
		stage *contract.Stage
	)
	_, err := uc.writer.mutate(ctx, cmd.Identity, authorization.ActionCreate, cmd.ContractID, true, func(c *contract.Contract) error {
		var err error
		index, stage, err = c.AppendStage(input, id.NewStageID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to append stage", "contract_id", cmd.ContractID, "error", err)
		return nil, err
	}

	uc.logger.Infow("stage appended", "contract_id", cmd.ContractID, "index", index, "stage_id", stage.ID())
	return &dto.StageMutationResult{ContractID: cmd.ContractID, Index: index, StageID: stage.ID()}, nil
}
