package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

// DashboardHandler serves the client panel landing page data.
type DashboardHandler struct {
	getDashboardUseCase  getDashboardUseCase
	getActivitiesUseCase getActivitiesUseCase
	logger               logger.Interface
}

func NewDashboardHandler(
	getDashboardUC getDashboardUseCase,
	getActivitiesUC getActivitiesUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUseCase:  getDashboardUC,
		getActivitiesUseCase: getActivitiesUC,
		logger:               logger,
	}
}

// GetDashboard handles GET /panel/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	result, err := h.getDashboardUseCase.Execute(c.Request.Context(), usecases.GetDashboardQuery{Identity: identity})
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "user_id", identity.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetActivities handles GET /panel/activities
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	result, err := h.getActivitiesUseCase.Execute(c.Request.Context(), usecases.GetActivitiesQuery{Identity: identity})
	if err != nil {
		h.logger.Errorw("failed to get activities", "user_id", identity.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
