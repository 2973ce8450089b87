package usecases

import (
	"context"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

// UpdateStageCommand merges only the non-nil fields. The single-field status
// and title edits are this command with one field set.
type UpdateStageCommand struct {
	Identity    authorization.Identity
	ContractID  uint
	Ref         contract.StageRef
	Title       *string
	Date        *string
	Description *string
	Status      *string
}

func (cmd UpdateStageCommand) patch() contract.StagePatch {
	clean := func(v *string, fn func(string) string) *string {
		if v == nil {
			return nil
		}
		s := fn(*v)
		return &s
	}
	return contract.StagePatch{
		Title:       clean(cmd.Title, sanitize.Text),
		Date:        clean(cmd.Date, sanitize.Text),
		Description: clean(cmd.Description, sanitize.Multiline),
		Status:      clean(cmd.Status, sanitize.Text),
	}
}

type UpdateStageUseCase struct {
	writer stageWriter
	logger logger.Interface
}

func NewUpdateStageUseCase(contractRepo contract.ContractRepository, authorizer Authorizer, logger logger.Interface) *UpdateStageUseCase {
	return &UpdateStageUseCase{
		writer: stageWriter{repo: contractRepo, authorizer: authorizer},
		logger: logger,
	}
}

func (uc *UpdateStageUseCase) Execute(ctx context.Context, cmd UpdateStageCommand) (*dto.StageDTO, error) {
	uc.logger.Infow("executing update stage use case", "contract_id", cmd.ContractID, "stage", cmd.Ref.String())

	patch := cmd.patch()
	if patch.IsEmpty() {
		return nil, errors.NewValidationError("no stage fields to update")
	}

	var updated *contract.Stage
	_, err := uc.writer.mutate(ctx, cmd.Identity, authorization.ActionUpdate, cmd.ContractID, cmd.Ref.ByID(), func(c *contract.Contract) error {
		var err error
		updated, err = c.UpdateStage(cmd.Ref, patch)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to update stage", "contract_id", cmd.ContractID, "stage", cmd.Ref.String(), "error", err)
		return nil, err
	}

	result := dto.ToStageDTO(updated, nil)
	return &result, nil
}
