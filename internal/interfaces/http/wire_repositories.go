package http

import (
	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/repository"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo     user.Repository
	contractRepo *repository.ContractRepository
	ticketRepo   *repository.TicketRepository
	assetRepo    *repository.AssetRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:     repository.NewUserRepository(db, log),
		contractRepo: repository.NewContractRepository(db, log),
		ticketRepo:   repository.NewTicketRepository(db, log),
		assetRepo:    repository.NewAssetRepository(db),
	}
}
