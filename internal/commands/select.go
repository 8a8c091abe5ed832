package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gaborage/stmtkit/database"
	"github.com/gaborage/stmtkit/database/types"
)

// Output formats for the select command
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SelectOptions holds options for the select command
type SelectOptions struct {
	Fields    []string
	Where     []string
	OrderBy   string
	Direction string
	Limit     int
	Offset    int
	Vendor    string
	Format    string
}

// SelectResult is the structured form of a rendered statement
type SelectResult struct {
	Target    string `json:"target" yaml:"target"`
	Vendor    string `json:"vendor" yaml:"vendor"`
	Statement string `json:"statement" yaml:"statement"`
}

// NewSelectCommand creates the select command
func NewSelectCommand(global *GlobalOptions) *cobra.Command {
	opts := &SelectOptions{}

	cmd := &cobra.Command{
		Use:   "select <target>",
		Short: "Render a SELECT statement",
		Long: `Renders a SELECT statement for the given target.

Conditions are opaque SQL fragments joined with AND in the order given.
The row limit defaults to statement.limit.default and may not exceed
statement.limit.max when one is configured. A limit of 0 means unbounded.`,
		Example: `  # Everything from users
  stmtkit select users

  # Projection, conditions, ordering and a row limit
  stmtkit select users --fields id,name,email --where "age > 18" --where "country = 'CR'" \
    --order-by name --direction asc --limit 10

  # Oracle dialect as YAML
  stmtkit select accounts --fields id,level --vendor oracle --limit 5 --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, global, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Fields, "fields", "f", nil, "Comma-separated projection (default: all columns)")
	cmd.Flags().StringArrayVarP(&opts.Where, "where", "w", nil, "Condition fragment, repeatable")
	cmd.Flags().StringVarP(&opts.OrderBy, "order-by", "o", "", "Sort field")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "asc", "Sort direction (asc|desc)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Row limit, 0 for unbounded (default: statement.limit.default)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Rows to skip")
	cmd.Flags().StringVar(&opts.Vendor, "vendor", "", "SQL dialect (generic|postgresql|oracle) (default: statement.vendor)")
	cmd.Flags().StringVar(&opts.Format, "format", FormatText, "Output format (text|json|yaml)")

	return cmd
}

func runSelect(cmd *cobra.Command, global *GlobalOptions, opts *SelectOptions, target string) error {
	if err := validateSelectOptions(cmd, opts); err != nil {
		return err
	}

	cfg, log, err := setup(global, cmd)
	if err != nil {
		return err
	}

	stmtCfg := cfg.Statement
	if opts.Vendor != "" {
		stmtCfg.Vendor = opts.Vendor
	}

	factory, err := database.NewFactory(&stmtCfg, log)
	if err != nil {
		return err
	}

	stmt, err := factory.New(target)
	if err != nil {
		return err
	}

	if len(opts.Fields) > 0 {
		stmt.Select(opts.Fields...)
	}
	for _, condition := range opts.Where {
		stmt.Where(condition)
	}
	if opts.OrderBy != "" {
		direction, err := types.ParseDirection(opts.Direction)
		if err != nil {
			return err
		}
		stmt.OrderBy(opts.OrderBy, direction)
	}
	if cmd.Flags().Changed("limit") {
		if err := factory.ValidateLimit(opts.Limit); err != nil {
			return err
		}
		stmt.Limit(opts.Limit)
	}
	if cmd.Flags().Changed("offset") {
		stmt.Offset(opts.Offset)
	}

	sql, err := factory.Render(stmt)
	if err != nil {
		return err
	}

	return writeSelectResult(cmd.OutOrStdout(), opts.Format, SelectResult{
		Target:    stmt.Target(),
		Vendor:    stmt.Vendor(),
		Statement: sql,
	})
}

func validateSelectOptions(cmd *cobra.Command, opts *SelectOptions) error {
	switch opts.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", opts.Format)
	}

	if cmd.Flags().Changed("direction") && opts.OrderBy == "" {
		return errors.New("--direction requires --order-by")
	}

	return nil
}

func writeSelectResult(w io.Writer, format string, result SelectResult) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, strings.TrimSpace(result.Statement))
		return err
	}
}
