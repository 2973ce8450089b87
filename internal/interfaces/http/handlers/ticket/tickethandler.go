package ticket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      createTicketUseCase
	getTicketUC         getTicketUseCase
	listTicketsUC       listTicketsUseCase
	sendMessageUC       sendMessageUseCase
	uploadMessageFileUC uploadMessageFileUseCase
	changeStatusUC      changeStatusUseCase
	markMessageReadUC   markMessageReadUseCase
	maxUploadBytes      int64
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC createTicketUseCase,
	getTicketUC getTicketUseCase,
	listTicketsUC listTicketsUseCase,
	sendMessageUC sendMessageUseCase,
	uploadMessageFileUC uploadMessageFileUseCase,
	changeStatusUC changeStatusUseCase,
	markMessageReadUC markMessageReadUseCase,
	maxUploadBytes int64,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		sendMessageUC:       sendMessageUC,
		uploadMessageFileUC: uploadMessageFileUC,
		changeStatusUC:      changeStatusUC,
		markMessageReadUC:   markMessageReadUC,
		maxUploadBytes:      maxUploadBytes,
		logger:              log,
	}
}

// CreateTicket handles POST /panel/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Identity:    middleware.GetIdentity(c),
		Title:       req.Title,
		Content:     req.Content,
		Attachments: req.Attachments,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /panel/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Identity: middleware.GetIdentity(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /panel/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Identity: middleware.GetIdentity(c),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendMessage handles POST /panel/tickets/:id/messages and the staff reply
// route; the use case decides the status transition from the sender.
func (h *TicketHandler) SendMessage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		Identity:    middleware.GetIdentity(c),
		TicketID:    ticketID,
		Content:     req.Content,
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent successfully")
}

// UploadMessageFile handles POST /panel/tickets/files
func (h *TicketHandler) UploadMessageFile(c *gin.Context) {
	file, err := utils.OpenFormFile(c, "file", h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	result, err := h.uploadMessageFileUC.Execute(c.Request.Context(), usecases.UploadMessageFileCommand{
		Identity:    middleware.GetIdentity(c),
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

// ChangeStatus handles PATCH /admin/tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Identity: middleware.GetIdentity(c),
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// MarkMessageRead handles POST /admin/tickets/:id/messages/:messageId/read
func (h *TicketHandler) MarkMessageRead(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messageID := strings.TrimSpace(c.Param("messageId"))
	if messageID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("message ID is required"))
		return
	}

	err = h.markMessageReadUC.Execute(c.Request.Context(), usecases.MarkMessageReadCommand{
		Identity:  middleware.GetIdentity(c),
		TicketID:  ticketID,
		MessageID: messageID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message marked as read", nil)
}
