package dto

import (
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/mapper"
)

type ContractListItemDTO struct {
	ID             uint      `json:"id"`
	ContractNumber string    `json:"contract_number"`
	Title          string    `json:"title"`
	ClientID       uint      `json:"client_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Value          string    `json:"value"`
	Progress       int       `json:"progress"`
	Status         string    `json:"status"`
	StageCount     int       `json:"stage_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ContractDTO struct {
	ID             uint       `json:"id"`
	ContractNumber string     `json:"contract_number"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ClientID       uint       `json:"client_id"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	Value          string     `json:"value"`
	Progress       int        `json:"progress"`
	Status         string     `json:"status"`
	Stages         []StageDTO `json:"stages"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type StageDTO struct {
	ID          string       `json:"id"`
	Order       int          `json:"order"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Files       []asset.View `json:"files"`
}

type DashboardDTO struct {
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"in_progress"`
	OpenTickets int    `json:"open_tickets"`
	TotalValue  string `json:"total_value"`
}

type ActivityDTO struct {
	Type    string    `json:"type"`
	Icon    string    `json:"icon"`
	Title   string    `json:"title"`
	Time    time.Time `json:"time"`
	TimeAgo string    `json:"time_ago"`
}

// StageMutationResult reports where a stage ended up after a write.
type StageMutationResult struct {
	ContractID uint   `json:"contract_id"`
	Index      int    `json:"index"`
	StageID    string `json:"stage_id"`
}

func ToContractListItemDTO(c *contract.Contract) ContractListItemDTO {
	return ContractListItemDTO{
		ID:             c.ID(),
		ContractNumber: c.ContractNumber(),
		Title:          c.Title(),
		ClientID:       c.ClientID(),
		StartDate:      c.StartDate(),
		EndDate:        c.EndDate(),
		Value:          c.Value(),
		Progress:       c.Progress(),
		Status:         c.Status().String(),
		StageCount:     len(c.Stages()),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func ToContractListItemDTOs(contracts []*contract.Contract) []ContractListItemDTO {
	return mapper.MapSlice(contracts, ToContractListItemDTO)
}

// ToContractDTO maps a contract with its stages; files is called per stage
// to turn asset IDs into views.
func ToContractDTO(c *contract.Contract, files func(ids []uint) []asset.View) *ContractDTO {
	stages := c.Stages()
	out := &ContractDTO{
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
		Stages:         make([]StageDTO, 0, len(stages)),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
	for _, s := range stages {
		out.Stages = append(out.Stages, ToStageDTO(s, files(s.Files())))
	}
	return out
}

func ToStageDTO(s *contract.Stage, files []asset.View) StageDTO {
	if files == nil {
		files = []asset.View{}
	}
	return StageDTO{
		ID:          s.ID(),
		Order:       s.Order(),
		Title:       s.Title(),
		Date:        s.Date(),
		Description: s.Description(),
		Status:      s.Status().String(),
		Files:       files,
	}
}
