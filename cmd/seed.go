package cmd

import (
	"errors"

	"roster/internal/storage"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample departments, roles and employees",
		Long: `Insert the bundled sample data into an empty roster database.
Nothing is written when departments already exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			err = application.Store().Seed(cmd.Context())
			if errors.Is(err, storage.ErrAlreadySeeded) {
				application.Output().Warning("Database already holds data, sample data not loaded.")
				return nil
			}
			if err != nil {
				return err
			}
			application.Output().Success("Sample data has been loaded.")
			return nil
		},
	}
}
