package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/migrate"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/policy"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/server"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/user"
	"github.com/contracthub-inc/contracthub/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contracthub",
		Short: "ContractHub - client portal for contracts and support tickets",
		Long:  `ContractHub serves the client and admin panels and ships the migration, account and policy tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
		policy.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				info := version.Get()
				fmt.Fprintf(cmd.OutOrStdout(), "contracthub %s (commit %s, built %s)\n", info.Version, info.Commit, info.BuildTime)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
