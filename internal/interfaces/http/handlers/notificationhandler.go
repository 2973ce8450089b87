package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type NotificationHandler struct {
	hasUnreadUseCase hasUnreadUseCase
	logger           logger.Interface
}

func NewNotificationHandler(hasUnreadUC hasUnreadUseCase, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		hasUnreadUseCase: hasUnreadUC,
		logger:           logger,
	}
}

// HasUnread handles GET /panel/notifications/unread. The panel polls it, so
// nothing is logged on success.
func (h *NotificationHandler) HasUnread(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	hasUnread, err := h.hasUnreadUseCase.Execute(c.Request.Context(), usecases.HasUnreadQuery{Identity: identity})
	if err != nil {
		h.logger.Errorw("failed to check unread messages", "user_id", identity.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", HasUnreadResponse{HasUnread: hasUnread})
}
