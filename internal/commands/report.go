package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaborage/stmtkit/database"
	"github.com/gaborage/stmtkit/report"
)

// NewReportCommand creates the report command
func NewReportCommand(global *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <kind>",
		Short: "Generate a report document",
		Long: fmt.Sprintf(`Generates a report of the given kind and prints the statement it would run.

Available kinds: %s`, strings.Join(report.Kinds(), ", ")),
		Example: `  stmtkit report sales
  stmtkit report inventory --config stmtkit.yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: report.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, global, args[0])
		},
	}

	return cmd
}

func runReport(cmd *cobra.Command, global *GlobalOptions, kind string) error {
	creator, err := report.Lookup(kind)
	if err != nil {
		return err
	}

	cfg, log, err := setup(global, cmd)
	if err != nil {
		return err
	}

	factory, err := database.NewFactory(&cfg.Statement, log)
	if err != nil {
		return err
	}

	return report.NewGenerator(factory, log).Generate(creator, cmd.OutOrStdout())
}
