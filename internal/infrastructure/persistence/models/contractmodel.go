package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
)

// ContractModel stores a contract row. Stages live in one JSON column that
// is rewritten on every change and guarded by Version.
type ContractModel struct {
	ID             uint           `gorm:"primarykey"`
	ContractNumber string         `gorm:"size:100;index"`
	Title          string         `gorm:"not null;size:255"`
	Description    string         `gorm:"type:text"`
	ClientID       uint           `gorm:"not null;index"`
	StartDate      string         `gorm:"size:50"`
	EndDate        string         `gorm:"size:50"`
	Value          string         `gorm:"size:100"`
	Progress       int            `gorm:"not null;default:0"`
	Status         string         `gorm:"not null;size:20;default:in_progress;index"`
	Stages         datatypes.JSON `gorm:"type:json"`
	Version        int            `gorm:"not null;default:1"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null;index"`
}

func (ContractModel) TableName() string {
	return constants.TableContracts
}
