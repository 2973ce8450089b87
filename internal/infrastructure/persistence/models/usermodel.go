package models

import (
	"time"

	"github.com/contracthub-inc/contracthub/internal/shared/constants"
)

// UserModel is the persistence shape of a user account.
type UserModel struct {
	ID           uint      `gorm:"primarykey"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	DisplayName  string    `gorm:"not null;size:100"`
	PasswordHash string    `gorm:"not null;size:255"`
	Role         string    `gorm:"not null;size:20;default:organization;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
