package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Content     string `json:"content" binding:"required,notblank,max=10000"`
	Attachments []uint `json:"attachments" binding:"max=10"`
	// OwnerID lets staff open a ticket for a client.
	OwnerID uint `json:"owner_id"`
}

type SendMessageRequest struct {
	Content     string `json:"content" binding:"required,notblank,max=10000"`
	Attachments []uint `json:"attachments" binding:"max=10"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress answered closed"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}
