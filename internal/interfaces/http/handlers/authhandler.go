package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/application/user/usecases"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase  loginUseCase
	logoutUseCase logoutUseCase
	secureCookie  bool
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	secureCookie bool,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		logoutUseCase: logoutUC,
		secureCookie:  secureCookie,
		logger:        logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	utils.SetAccessTokenCookie(c, result.AccessToken, maxAge, h.secureCookie)

	utils.SuccessResponse(c, http.StatusOK, "login successful", &LoginResponse{
		User:      toUserInfoResponse(result.User),
		CSRFToken: result.CSRFToken,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.SessionID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("session not found"))
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: identity.SessionID}); err != nil {
		h.logger.Errorw("logout failed", "error", err, "user_id", identity.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAccessTokenCookie(c, h.secureCookie)

	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}
