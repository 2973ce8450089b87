// Package migration applies the schema. MySQL deployments run versioned SQL
// scripts (goose by default, golang-migrate on request); SQLite development
// databases use gorm AutoMigrate.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang_migrate"
	StrategyAutoMigrate   = "gorm_auto_migrate"

	gooseDir   = "scripts/goose"
	migrateDir = "scripts/migrate"
)

//go:embed scripts/goose/*.sql scripts/migrate/*.sql
var scripts embed.FS

// Strategy applies every pending migration.
type Strategy interface {
	Migrate(db *gorm.DB) error
	Name() string
}

// Models lists every table AutoMigrate owns. The casbin_rule table is
// created by the casbin adapter itself.
func Models() []any {
	return []any{
		&models.UserModel{},
		&models.ContractModel{},
		&models.TicketModel{},
		&models.AssetModel{},
	}
}

// NewStrategy picks the migration strategy for a driver. SQLite always uses
// AutoMigrate because the SQL scripts are written for MySQL.
func NewStrategy(driver, name string, log logger.Interface) (Strategy, error) {
	if strings.EqualFold(driver, "sqlite") {
		return NewAutoMigrateStrategy(log), nil
	}

	switch strings.ToLower(name) {
	case "", StrategyGoose:
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyAutoMigrate:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log}
}

func (s *AutoMigrateStrategy) Name() string {
	return StrategyAutoMigrate
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("running gorm auto migrate", "models", len(Models()))
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
