package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/database"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/migration"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/bootstrap"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const defaultScriptsDir = "./internal/infrastructure/migration/scripts/goose"

var (
	opts       bootstrap.Options
	name       string
	steps      int
	scriptsDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new goose SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", defaultScriptsDir, "Directory the migration file is written to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initStrategy() (migration.Strategy, logger.Interface, error) {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := migration.NewStrategy(cfg.Database.Driver, cfg.Database.MigrationStrategy, log)
	if err != nil {
		database.Close()
		return nil, nil, err
	}

	return strategy, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.Env, "strategy", strategy.Name())

	if err := strategy.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, log, err := initStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", opts.Env, "steps", steps)

	down, ok := strategy.(interface {
		MigrateDown(db *gorm.DB, steps int) error
	})
	if !ok {
		return fmt.Errorf("down migration is not supported by the %s strategy", strategy.Name())
	}

	if err := down.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, log, err := initStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", opts.Env)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment: %s\n", opts.Env)
	fmt.Fprintf(out, "  Strategy:    %s\n", strategy.Name())

	switch s := strategy.(type) {
	case *migration.GooseStrategy:
		version, err := s.Version(database.Get())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}
		fmt.Fprintf(out, "  Version:     %d\n", version)
		if err := s.Status(database.Get()); err != nil {
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	case *migration.GolangMigrateStrategy:
		version, dirty, err := s.Version(database.Get())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}
		fmt.Fprintf(out, "  Version:     %d\n", version)
		fmt.Fprintf(out, "  Dirty:       %t\n", dirty)
	default:
		fmt.Fprintf(out, "  Schema is managed by AutoMigrate; no version table\n")
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "dir", scriptsDir)

	if err := migration.NewGooseStrategy(log).Create(scriptsDir, name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, scriptsDir)
	return nil
}
