package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contracthub-inc/contracthub/internal/application/user/usecases"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/auth"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/database"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/repository"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/bootstrap"
)

var (
	opts        bootstrap.Options
	email       string
	displayName string
	password    string
	role        string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account tools",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  `Create an admin or organization account. Accounts are provisioned only through this command.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password, at least 8 characters (required)")
	cmd.Flags().StringVar(&role, "role", "organization", "Role: admin or organization")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewCreateUserUseCase(
		repository.NewUserRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	result, err := uc.Execute(context.Background(), usecases.CreateUserCommand{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
		Role:        role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s user %s (id %d)\n", result.Role, result.Email, result.UserID)
	return nil
}
