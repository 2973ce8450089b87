package handlers

import (
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
)

// LoginResponse represents the response for user login. The CSRF token must
// be echoed in the X-CSRF-Token header of every mutating request.
type LoginResponse struct {
	User      *UserInfoResponse `json:"user"`
	CSRFToken string            `json:"csrf_token"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// UserInfoResponse represents user information in API responses.
type UserInfoResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func toUserInfoResponse(u *user.User) *UserInfoResponse {
	return &UserInfoResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}
}

// HasUnreadResponse is the body of the notification poll.
type HasUnreadResponse struct {
	HasUnread bool `json:"has_unread"`
}
