package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
)

// TicketModel stores a ticket row with its whole thread as a JSON column.
type TicketModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"size:200;not null"`
	OwnerID   uint           `gorm:"not null;index"`
	Status    string         `gorm:"size:20;not null;index"`
	Messages  datatypes.JSON `gorm:"type:json"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null;index"`

	// No foreign keys: ownership is enforced by the application.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
