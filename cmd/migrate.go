package cmd

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the roster database schema",
		Long: `Apply the embedded schema migrations and exit. Migrations that were
already applied are skipped. The interactive menu runs the same step on start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			application.Output().Success("Database schema is up to date (%s).", application.Store().Dialect())
			return nil
		},
	}
}
