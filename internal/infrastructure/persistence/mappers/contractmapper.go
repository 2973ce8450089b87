package mappers

import (
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	vo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/setutil"
)

type ContractMapper interface {
	ToModel(c *contract.Contract) (*models.ContractModel, error)
	// ToDomain treats an unreadable stage column as an empty stage list.
	ToDomain(model *models.ContractModel) *contract.Contract
}

type ContractMapperImpl struct{}

func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

type stageRecord struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Files       []uint `json:"files"`
}

func (m *ContractMapperImpl) ToModel(c *contract.Contract) (*models.ContractModel, error) {
	stages := c.Stages()
	records := make([]stageRecord, 0, len(stages))
	for _, s := range stages {
		records = append(records, stageRecord{
			ID:          s.ID(),
			Order:       s.Order(),
			Title:       s.Title(),
			Date:        s.Date(),
			Description: s.Description(),
			Status:      s.Status().String(),
			Files:       s.Files(),
		})
	}

	blob, err := encodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("contract %d: %w", c.ID(), err)
	}

	return &models.ContractModel{
		ID:             c.ID(),
		ContractNumber: c.ContractNumber(),
		Title:          c.Title(),
		Description:    c.Description(),
		ClientID:       c.ClientID(),
		StartDate:      c.StartDate(),
		EndDate:        c.EndDate(),
		Value:          c.Value(),
		Progress:       c.Progress(),
		Status:         c.Status().String(),
		Stages:         blob,
		Version:        c.Version(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}, nil
}

func (m *ContractMapperImpl) ToDomain(model *models.ContractModel) *contract.Contract {
	return contract.ReconstructContract(
		model.ID,
		contract.Fields{
			ContractNumber: model.ContractNumber,
			Title:          model.Title,
			Description:    model.Description,
			ClientID:       model.ClientID,
			StartDate:      model.StartDate,
			EndDate:        model.EndDate,
			Value:          model.Value,
			Progress:       model.Progress,
			Status:         model.Status,
		},
		DecodeStages(model.Stages),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// DecodeStages reads a stored stage list in stored order. A stage without an
// ID gets a positional one that becomes permanent on the next write; stage
// files are de-duplicated.
func DecodeStages(raw []byte) []*contract.Stage {
	records := decodeRecords(raw)
	out := make([]*contract.Stage, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		stageID := r.str("id")
		if _, dup := seen[stageID]; stageID == "" || dup {
			stageID = positionalID("stg", i, seen)
		}
		seen[stageID] = struct{}{}

		out = append(out, contract.ReconstructStage(
			stageID,
			i,
			r.str("title"),
			r.str("date"),
			r.str("description"),
			vo.ParseStageStatus(r.str("status")),
			setutil.Unique(r.uints("files")),
		))
	}
	return out
}

// positionalID names a record by its stored position. A stored ID may already
// look positional, so a numeric suffix is added until the name is free.
func positionalID(prefix string, index int, taken map[string]struct{}) string {
	candidate := fmt.Sprintf("%s_L%d", prefix, index)
	for n := 1; ; n++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s_L%d_%d", prefix, index, n)
	}
}
