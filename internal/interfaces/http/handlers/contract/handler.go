package contract

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

// Handler serves contracts to their clients and the stage editor to staff.
type Handler struct {
	listContractsUC   listContractsUseCase
	getContractUC     getContractUseCase
	createContractUC  createContractUseCase
	updateContractUC  updateContractUseCase
	deleteContractUC  deleteContractUseCase
	appendStageUC     appendStageUseCase
	updateStageUC     updateStageUseCase
	deleteStageUC     deleteStageUseCase
	uploadStageFileUC uploadStageFileUseCase
	removeStageFileUC removeStageFileUseCase
	maxUploadBytes    int64
	logger            logger.Interface
}

// UseCases groups Handler dependencies.
type UseCases struct {
	ListContracts   listContractsUseCase
	GetContract     getContractUseCase
	CreateContract  createContractUseCase
	UpdateContract  updateContractUseCase
	DeleteContract  deleteContractUseCase
	AppendStage     appendStageUseCase
	UpdateStage     updateStageUseCase
	DeleteStage     deleteStageUseCase
	UploadStageFile uploadStageFileUseCase
	RemoveStageFile removeStageFileUseCase
}

func NewHandler(ucs UseCases, maxUploadBytes int64, log logger.Interface) *Handler {
	return &Handler{
		listContractsUC:   ucs.ListContracts,
		getContractUC:     ucs.GetContract,
		createContractUC:  ucs.CreateContract,
		updateContractUC:  ucs.UpdateContract,
		deleteContractUC:  ucs.DeleteContract,
		appendStageUC:     ucs.AppendStage,
		updateStageUC:     ucs.UpdateStage,
		deleteStageUC:     ucs.DeleteStage,
		uploadStageFileUC: ucs.UploadStageFile,
		removeStageFileUC: ucs.RemoveStageFile,
		maxUploadBytes:    maxUploadBytes,
		logger:            log,
	}
}

// ListContracts handles GET /panel/contracts
func (h *Handler) ListContracts(c *gin.Context) {
	result, err := h.listContractsUC.Execute(c.Request.Context(), usecases.ListContractsQuery{
		Identity: middleware.GetIdentity(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetContract handles GET /panel/contracts/:id
func (h *Handler) GetContract(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getContractUC.Execute(c.Request.Context(), usecases.GetContractQuery{
		Identity:   middleware.GetIdentity(c),
		ContractID: contractID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateContract handles POST /admin/contracts
func (h *Handler) CreateContract(c *gin.Context) {
	var req ContractRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create contract", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createContractUC.Execute(c.Request.Context(), usecases.CreateContractCommand{
		Identity:      middleware.GetIdentity(c),
		ContractInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contract created successfully")
}

// UpdateContract handles PATCH /admin/contracts/:id
func (h *Handler) UpdateContract(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ContractRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateContractUC.Execute(c.Request.Context(), usecases.UpdateContractCommand{
		Identity:      middleware.GetIdentity(c),
		ContractID:    contractID,
		ContractInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract updated successfully", result)
}

// DeleteContract handles DELETE /admin/contracts/:id
func (h *Handler) DeleteContract(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteContractUC.Execute(c.Request.Context(), usecases.DeleteContractCommand{
		Identity:   middleware.GetIdentity(c),
		ContractID: contractID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract deleted successfully", nil)
}

// AppendStage handles POST /admin/contracts/:id/stages
func (h *Handler) AppendStage(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendStageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.appendStageUC.Execute(c.Request.Context(), usecases.AppendStageCommand{
		Identity:    middleware.GetIdentity(c),
		ContractID:  contractID,
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Stage added successfully")
}

// UpdateStage handles PATCH /admin/contracts/:id/stages/:stage
func (h *Handler) UpdateStage(c *gin.Context) {
	var req UpdateStageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.patchStage(c, usecases.UpdateStageCommand{
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Status:      req.Status,
	})
}

// UpdateStageStatus handles PATCH /admin/contracts/:id/stages/:stage/status
func (h *Handler) UpdateStageStatus(c *gin.Context) {
	var req UpdateStageStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.patchStage(c, usecases.UpdateStageCommand{Status: &req.Status})
}

// UpdateStageTitle handles PATCH /admin/contracts/:id/stages/:stage/title
func (h *Handler) UpdateStageTitle(c *gin.Context) {
	var req UpdateStageTitleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.patchStage(c, usecases.UpdateStageCommand{Title: &req.Title})
}

func (h *Handler) patchStage(c *gin.Context, cmd usecases.UpdateStageCommand) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ref, err := parseStageRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd.Identity = middleware.GetIdentity(c)
	cmd.ContractID = contractID
	cmd.Ref = ref

	result, err := h.updateStageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stage updated successfully", result)
}

// DeleteStage handles DELETE /admin/contracts/:id/stages/:stage
func (h *Handler) DeleteStage(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ref, err := parseStageRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteStageUC.Execute(c.Request.Context(), usecases.DeleteStageCommand{
		Identity:   middleware.GetIdentity(c),
		ContractID: contractID,
		Ref:        ref,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stage deleted successfully", nil)
}

// UploadStageFile handles POST /admin/contracts/:id/stages/:stage/files
func (h *Handler) UploadStageFile(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ref, err := parseStageRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := utils.OpenFormFile(c, "file", h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	result, err := h.uploadStageFileUC.Execute(c.Request.Context(), usecases.UploadStageFileCommand{
		Identity:    middleware.GetIdentity(c),
		ContractID:  contractID,
		Ref:         ref,
		FileName:    file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File uploaded successfully")
}

// RemoveStageFile handles DELETE /admin/contracts/:id/stages/:stage/files/:file
func (h *Handler) RemoveStageFile(c *gin.Context) {
	contractID, err := parseContractID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ref, err := parseStageRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	fileIndex, err := parseFileIndex(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.removeStageFileUC.Execute(c.Request.Context(), usecases.RemoveStageFileCommand{
		Identity:   middleware.GetIdentity(c),
		ContractID: contractID,
		Ref:        ref,
		FileIndex:  fileIndex,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "File removed successfully", nil)
}
