package policy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/database"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/permission"
	"github.com/contracthub-inc/contracthub/internal/interfaces/cli/bootstrap"
)

var (
	opts       bootstrap.Options
	policyFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Authorization policy tools",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	sync := &cobra.Command{
		Use:   "sync",
		Short: "Replace stored policies with the policy file",
		Long:  `Load the YAML policy file and replace every stored casbin policy with its contents.`,
		RunE:  runSync,
	}
	sync.Flags().StringVarP(&policyFile, "file", "f", "", "Policy file (default: authorization.policy_file)")

	cmd.AddCommand(sync)

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	path := policyFile
	if path == "" {
		path = cfg.Authorization.PolicyFile
	}
	if path == "" {
		return fmt.Errorf("no policy file given and authorization.policy_file is empty")
	}

	enforcer, err := permission.NewEnforcer(database.Get(), cfg.Authorization.ModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	count, err := permission.NewPolicySync(enforcer, log).SyncFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to sync policies: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d policies from %s\n", count, path)
	return nil
}
