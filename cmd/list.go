package cmd

import (
	"context"
	"fmt"

	"roster/internal/cli"
	"roster/internal/storage"
	"roster/internal/table"

	"github.com/spf13/cobra"
)

var listOutputFormat string

// listResources maps each resource name and its aliases to the view that lists it.
var listResources = map[string]func(s *storage.Store, ctx context.Context) ([]table.Record, error){
	"departments": (*storage.Store).ViewDepartments,
	"department":  (*storage.Store).ViewDepartments,
	"roles":       (*storage.Store).ViewRoles,
	"role":        (*storage.Store).ViewRoles,
	"employees":   (*storage.Store).ViewEmployees,
	"employee":    (*storage.Store).ViewEmployees,
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <departments|roles|employees>",
		Short: "Print departments, roles or employees without the menu",
		Long: `Print one of the roster views and exit.

The table format matches the interactive menu. json and yaml print one object
per row, with null for missing references.

Examples:
  roster list departments
  roster list employees -o yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"departments", "roles", "employees"},
		RunE:      runList,
	}
	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(listOutputFormat); err != nil {
		return err
	}
	view, ok := listResources[args[0]]
	if !ok {
		return fmt.Errorf("unknown resource %q (valid: departments, roles, employees)", args[0])
	}

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	defer application.Close()

	records, err := view(application.Store(), cmd.Context())
	if err != nil {
		return err
	}
	return cli.WriteRecords(cmd.OutOrStdout(), records, cli.OutputFormat(listOutputFormat))
}
