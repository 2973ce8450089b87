package contract

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

// ContractRequest carries the full field set; update replaces every field.
type ContractRequest struct {
	ContractNumber string `json:"contract_number" binding:"max=100"`
	Title          string `json:"title" binding:"required,max=255"`
	Description    string `json:"description" binding:"max=10000"`
	ClientID       uint   `json:"client_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"max=32"`
	EndDate        string `json:"end_date" binding:"max=32"`
	Value          string `json:"value" binding:"max=64"`
	Progress       int    `json:"progress"`
	Status         string `json:"status" binding:"max=32"`
}

func (r *ContractRequest) toInput() usecases.ContractInput {
	return usecases.ContractInput{
		ContractNumber: r.ContractNumber,
		Title:          r.Title,
		Description:    r.Description,
		ClientID:       r.ClientID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Value:          r.Value,
		Progress:       r.Progress,
		Status:         r.Status,
	}
}

type AppendStageRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Date        string `json:"date" binding:"max=32"`
	Description string `json:"description" binding:"max=10000"`
	Status      string `json:"status" binding:"max=32"`
}

// UpdateStageRequest leaves absent fields untouched.
type UpdateStageRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Date        *string `json:"date" binding:"omitempty,max=32"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	Status      *string `json:"status" binding:"omitempty,max=32"`
}

type UpdateStageStatusRequest struct {
	Status string `json:"status" binding:"required,max=32"`
}

type UpdateStageTitleRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

func parseContractID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "contract")
}

func parseStageRef(c *gin.Context) (contract.StageRef, error) {
	return contract.ParseStageRef(c.Param("stage"))
}

func parseFileIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(c.Param("file")))
	if err != nil || idx < 0 {
		return 0, errors.NewValidationError("invalid file index", c.Param("file"))
	}
	return idx, nil
}
